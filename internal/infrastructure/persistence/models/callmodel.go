package models

import (
	"time"

	"github.com/telebill/telebill/internal/shared/constants"
)

// CallModel is the GORM model for calls table. subscriber_id and city_id carry
// no foreign key constraint; readers skip rows whose parent is gone.
type CallModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	SID          string    `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	SubscriberID uint      `gorm:"column:subscriber_id;not null;index:idx_calls_subscriber_id"`
	CityID       uint      `gorm:"column:city_id;not null;index:idx_calls_city_id"`
	Date         time.Time `gorm:"column:date;not null;index:idx_calls_date"`
	Duration     int       `gorm:"column:duration;not null"`
	TimeOfDay    string    `gorm:"column:time_of_day;type:varchar(10);not null"`
	Cost         float64   `gorm:"column:cost;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (CallModel) TableName() string {
	return constants.TableCalls
}
