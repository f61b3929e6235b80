package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ShippingAddress1 string          `gorm:"type:varchar(255);not null"`
	ShippingAddress2 string          `gorm:"type:varchar(255);not null"`
	City             string          `gorm:"type:varchar(100);not null"`
	Zip              string          `gorm:"type:varchar(20);not null"`
	Country          string          `gorm:"type:varchar(100);not null"`
	Phone            string          `gorm:"type:varchar(50);not null"`
	Status           string          `gorm:"type:varchar(50);not null;default:Pending"`
	TotalPrice       decimal.Decimal `gorm:"type:numeric;not null"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	DateOrdered      time.Time       `gorm:"not null;index"`

	User       *UserModel        `gorm:"foreignKey:UserID;references:ID"`
	OrderItems []*OrderItemModel `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. OrderID is null until the
// item is attached and carries no foreign key; the order workflow deletes
// items explicitly.
type OrderItemModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID   *uuid.UUID `gorm:"type:uuid;index"`
	Position  int        `gorm:"not null;default:0"`
	Quantity  int        `gorm:"type:bigint;not null"`
	ProductID uuid.UUID  `gorm:"type:uuid;not null"`

	Product *ProductModel `gorm:"foreignKey:ProductID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
