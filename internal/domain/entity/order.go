package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatusPending is the status every new order starts with.
const OrderStatusPending = "Pending"

// Order is a customer purchase. TotalPrice is always derived from the line
// items at creation time and never taken from the client.
type Order struct {
	ID               uuid.UUID       `json:"id"`
	OrderItems       []*OrderItem    `json:"orderItems"`
	ShippingAddress1 string          `json:"shippingAddress1"`
	ShippingAddress2 string          `json:"shippingAddress2"`
	City             string          `json:"city"`
	Zip              string          `json:"zip"`
	Country          string          `json:"country"`
	Phone            string          `json:"phone"`
	Status           string          `json:"status"`
	TotalPrice       decimal.Decimal `json:"totalPrice"`
	UserID           uuid.UUID       `json:"-"`
	User             *UserSummary    `json:"user,omitempty"`
	DateOrdered      time.Time       `json:"dateOrdered"`
}

// OrderItem is one line of an order. OrderID stays nil between the creation
// of the line item and its attachment to the order.
type OrderItem struct {
	ID        uuid.UUID  `json:"id"`
	OrderID   *uuid.UUID `json:"-"`
	Position  int        `json:"-"`
	Quantity  int        `json:"quantity"`
	ProductID uuid.UUID  `json:"-"`
	Product   *Product   `json:"product,omitempty"`
}

// LineTotal returns quantity x unit price. It is zero when the product is not loaded.
func (i *OrderItem) LineTotal() decimal.Decimal {
	if i.Product == nil {
		return decimal.Zero
	}

	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OrderLine is a requested line of a new order.
type OrderLine struct {
	ProductID uuid.UUID
	Quantity  int
}

// OrderEventType names the order lifecycle events.
type OrderEventType string

const (
	OrderEventCreated       OrderEventType = "order.created"
	OrderEventStatusChanged OrderEventType = "order.status_changed"
	OrderEventDeleted       OrderEventType = "order.deleted"
)
