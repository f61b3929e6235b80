package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "eshop/internal/delivery/context"
	"eshop/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	pushTimeout      = 10 * time.Second
	pushSubscription = "projects/local/subscriptions/eshop-order-events"
)

// PushEnvelope is the JSON body a Pub/Sub push subscription delivers. The
// local provider posts the same shape so a consumer runs unchanged against
// either provider.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		OrderingKey string            `json:"orderingKey,omitempty"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// pushPublisher delivers order events straight to a webhook. Used in
// development where no Pub/Sub emulator runs.
type pushPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

func NewPushPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &pushPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: pushTimeout},
		logger:   logger,
	}
}

func (p *pushPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	msg, err := encodeOrderEvent(event)
	if err != nil {
		return err
	}

	var envelope PushEnvelope
	envelope.Subscription = pushSubscription
	envelope.Message.Data = base64.StdEncoding.EncodeToString(msg.data)
	envelope.Message.Attributes = msg.attributes
	envelope.Message.MessageID = uuid.NewString()
	envelope.Message.OrderingKey = msg.orderingKey
	envelope.Message.PublishTime = time.Now().UTC().Format(time.RFC3339Nano)

	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push %s event", event.Type)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("push %s event: endpoint answered %d", event.Type, resp.StatusCode)
	}

	p.logger.DebugContext(ctx, "Order event pushed",
		slog.String("type", string(event.Type)),
		slog.String("orderId", event.OrderID),
		slog.String("messageId", envelope.Message.MessageID),
	)

	return nil
}

func (p *pushPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
