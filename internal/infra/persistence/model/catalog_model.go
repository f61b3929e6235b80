package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(100);not null"`
	Icon  string    `gorm:"type:varchar(100)"`
	Color string    `gorm:"type:varchar(20)"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel mirrors the 'products' table. CategoryID has no store level
// foreign key; existence is checked by the use case on writes.
type ProductModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name            string          `gorm:"type:varchar(255);not null"`
	Description     string          `gorm:"type:text;not null"`
	RichDescription string          `gorm:"type:text"`
	Image           string          `gorm:"type:text"`
	Images          pq.StringArray  `gorm:"type:text[]"`
	Brand           string          `gorm:"type:varchar(255)"`
	Price           decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	CategoryID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	CountInStock    int             `gorm:"not null"`
	Rating          float64         `gorm:"not null;default:0"`
	NumReviews      int             `gorm:"not null;default:0"`
	IsFeatured      bool            `gorm:"not null;default:false;index"`
	DateCreated     time.Time       `gorm:"not null"`

	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
