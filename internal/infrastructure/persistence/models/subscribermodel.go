package models

import (
	"time"

	"github.com/telebill/telebill/internal/shared/constants"
)

// SubscriberModel is the GORM model for subscribers table
type SubscriberModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	SID         string    `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	PhoneNumber string    `gorm:"column:phone_number;type:varchar(10);not null;uniqueIndex:idx_subscribers_phone_number"`
	Edrpou      string    `gorm:"column:edrpou;type:varchar(8);not null"`
	Address     string    `gorm:"column:address;type:varchar(255);not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (SubscriberModel) TableName() string {
	return constants.TableSubscribers
}
