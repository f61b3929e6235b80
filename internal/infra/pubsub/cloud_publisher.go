package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"eshop/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// cloudPublisher sends order events to a Google Cloud Pub/Sub topic.
type cloudPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topic     string
	logger    *slog.Logger
}

// NewCloudPublisher fails fast when the topic does not exist; topics are
// provisioned outside the service.
func NewCloudPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "pubsub client")
	}

	topic := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "lookup topic %s", topic)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	return &cloudPublisher{
		client:    client,
		publisher: publisher,
		topic:     topic,
		logger:    logger,
	}, nil
}

// PublishOrderEvent blocks until the server acknowledges the message.
func (p *cloudPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	msg, err := encodeOrderEvent(event)
	if err != nil {
		return err
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        msg.data,
		Attributes:  msg.attributes,
		OrderingKey: msg.orderingKey,
	}).Get(ctx)
	if err != nil {
		// A failed publish pauses the ordering key until resumed.
		p.publisher.ResumePublish(msg.orderingKey)

		return errors.Wrapf(err, "publish %s event to %s", event.Type, p.topic)
	}

	p.logger.DebugContext(ctx, "Order event published",
		slog.String("type", string(event.Type)),
		slog.String("orderId", event.OrderID),
		slog.String("serverId", serverID),
	)

	return nil
}

func (p *cloudPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
