package models

import (
	"time"

	"github.com/telebill/telebill/internal/shared/constants"
)

// CityModel is the GORM model for cities table. The name index uses a binary
// collation on MySQL so uniqueness is case-sensitive, see the init migration.
type CityModel struct {
	ID        uint                `gorm:"primaryKey;autoIncrement"`
	SID       string              `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	Name      string              `gorm:"column:name;type:varchar(100);not null;uniqueIndex:idx_cities_name"`
	DayRate   float64             `gorm:"column:day_rate;not null"`
	NightRate float64             `gorm:"column:night_rate;not null"`
	Discounts []CityDiscountModel `gorm:"foreignKey:CityID"`
	CreatedAt time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (CityModel) TableName() string {
	return constants.TableCities
}

// CityDiscountModel is one discount tier. Duration is in minutes and
// DiscountRate is a fraction.
type CityDiscountModel struct {
	ID           uint    `gorm:"primaryKey;autoIncrement"`
	CityID       uint    `gorm:"column:city_id;not null;uniqueIndex:idx_city_discounts_city_duration,priority:1"`
	Duration     float64 `gorm:"column:duration;not null;uniqueIndex:idx_city_discounts_city_duration,priority:2"`
	DiscountRate float64 `gorm:"column:discount_rate;not null"`
}

// TableName returns the table name for GORM
func (CityDiscountModel) TableName() string {
	return constants.TableCityDiscounts
}
