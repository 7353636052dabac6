package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// Mail events are small and a user is waiting on the verification link,
// so batches flush almost immediately.
const (
	mailPublishDelay   = 10 * time.Millisecond
	mailPublishTimeout = 15 * time.Second
)

// googlePubSubPublisher publishes mail events to a Cloud Pub/Sub topic.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topicPath string
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and fails fast when topicID does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "mail topic %s is not reachable", topicPath)
	}

	publisher := client.Publisher(topicID)
	publisher.PublishSettings.DelayThreshold = mailPublishDelay
	publisher.PublishSettings.Timeout = mailPublishTimeout

	logger.Info("Google Pub/Sub mail publisher initialized", slog.String("topic", topicPath))

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		topicPath: topicPath,
		logger:    logger,
	}, nil
}

// PublishMailEvent blocks until the server acknowledged the event.
func (p *googlePubSubPublisher) PublishMailEvent(ctx context.Context, event *service.MailEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: mailAttributes(event),
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "publish mail event %s to %s", event.EventID, p.topicPath)
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Debug("[GooglePubSub] Mail event published",
		slog.String("event_id", event.EventID),
		slog.String("template", event.Message.Template),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending publishes and releases the client.
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
