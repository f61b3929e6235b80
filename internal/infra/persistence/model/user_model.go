package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are generated by the application.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Phone        string    `gorm:"type:varchar(50);not null"`
	IsAdmin      bool      `gorm:"not null;default:false"`
	Street       string    `gorm:"type:varchar(255)"`
	Apartment    string    `gorm:"type:varchar(255)"`
	Zip          string    `gorm:"type:varchar(20)"`
	City         string    `gorm:"type:varchar(100)"`
	Country      string    `gorm:"type:varchar(100)"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
