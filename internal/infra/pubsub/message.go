package pubsub

import (
	"encoding/json"

	"eshop/internal/domain/service"

	"github.com/pkg/errors"
)

// orderMessage is an order event ready for either transport.
type orderMessage struct {
	data       []byte
	attributes map[string]string
	// orderingKey keeps events of one order in publish order.
	orderingKey string
}

func encodeOrderEvent(event *service.OrderEvent) (orderMessage, error) {
	if event == nil {
		return orderMessage{}, errors.New("nil order event")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return orderMessage{}, errors.Wrapf(err, "encode %s event", event.Type)
	}

	return orderMessage{
		data:        data,
		attributes:  eventAttributes(event),
		orderingKey: event.OrderID,
	}, nil
}

// eventAttributes are the message attributes subscribers filter on.
func eventAttributes(event *service.OrderEvent) map[string]string {
	attributes := map[string]string{
		"type":    string(event.Type),
		"orderId": event.OrderID,
		"userId":  event.UserID,
	}
	if event.RequestID != "" {
		attributes["requestId"] = event.RequestID
	}

	return attributes
}
