package models

import (
	"time"

	"github.com/telebill/telebill/internal/shared/constants"
)

// AdminModel is the GORM model for admins table
type AdminModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	SID          string    `gorm:"column:sid;type:varchar(50);not null;uniqueIndex"`
	Email        string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:idx_admins_email"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (AdminModel) TableName() string {
	return constants.TableAdmins
}
