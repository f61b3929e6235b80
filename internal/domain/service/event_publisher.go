package service

import (
	"context"
	"time"

	"eshop/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// OrderEvent is the payload published for every order lifecycle change.
type OrderEvent struct {
	Type       entity.OrderEventType `json:"type"`
	OrderID    string                `json:"orderId"`
	UserID     string                `json:"userId"`
	Status     string                `json:"status"`
	TotalPrice decimal.Decimal       `json:"totalPrice"`
	ItemCount  int                   `json:"itemCount"`
	OccurredAt time.Time             `json:"occurredAt"`
	RequestID  string                `json:"requestId,omitempty"` // For distributed tracing
}

// NewOrderEvent builds an event snapshot of the order.
func NewOrderEvent(eventType entity.OrderEventType, order *entity.Order, requestID string) *OrderEvent {
	return &OrderEvent{
		Type:       eventType,
		OrderID:    order.ID.String(),
		UserID:     order.UserID.String(),
		Status:     order.Status,
		TotalPrice: order.TotalPrice,
		ItemCount:  len(order.OrderItems),
		OccurredAt: time.Now().UTC(),
		RequestID:  requestID,
	}
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
