package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	localSubscription     = "projects/local/subscriptions/mail-push"
	localMaxDeliveries    = 3
	localRedeliveryDelay  = 200 * time.Millisecond
	localDeliveryDeadline = 30 * time.Second
)

// localHTTPPublisher pushes mail events straight to the worker's /push endpoint.
// Like a push subscription it redelivers when the worker answers 5xx.
type localHTTPPublisher struct {
	endpoint        string
	httpClient      *http.Client
	logger          *slog.Logger
	maxDeliveries   int
	redeliveryDelay time.Duration
}

// PubSubPushMessage is the envelope a push subscription POSTs to its endpoint.
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates the development publisher for the mail worker at endpoint.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return newLocalHTTPPublisher(endpoint, logger)
}

func newLocalHTTPPublisher(endpoint string, logger *slog.Logger) *localHTTPPublisher {
	return &localHTTPPublisher{
		endpoint:        endpoint,
		httpClient:      &http.Client{Timeout: localDeliveryDeadline},
		logger:          logger,
		maxDeliveries:   localMaxDeliveries,
		redeliveryDelay: localRedeliveryDelay,
	}
}

// PublishMailEvent returns once the worker acknowledged the event or rejected it for good.
func (p *localHTTPPublisher) PublishMailEvent(ctx context.Context, event *service.MailEvent) error {
	body, err := encodePushMessage(event, time.Now())
	if err != nil {
		return err
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, p.logger).With(
		slog.String("event_id", event.EventID),
		slog.String("template", event.Message.Template),
	)

	var lastErr error
	for delivery := 1; delivery <= p.maxDeliveries; delivery++ {
		status, err := p.push(ctx, event, body)
		switch {
		case err == nil && status >= 200 && status < 300:
			logger.Debug("[LocalPubSub] Event acknowledged", slog.Int("delivery", delivery))

			return nil
		case err == nil && status < 500:
			return errors.Errorf("worker rejected event %s with status %d", event.EventID, status)
		case err == nil:
			lastErr = errors.Errorf("worker returned status %d", status)
		default:
			lastErr = err
		}

		logger.Warn("[LocalPubSub] Delivery failed",
			slog.Int("delivery", delivery),
			slog.Any("error", lastErr),
		)

		if delivery == p.maxDeliveries {
			break
		}
		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case <-time.After(p.redeliveryDelay * time.Duration(delivery)):
		}
	}

	return errors.Wrapf(lastErr, "event %s not acknowledged after %d deliveries", event.EventID, p.maxDeliveries)
}

func (p *localHTTPPublisher) push(ctx context.Context, event *service.MailEvent, body []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, errors.WithStack(err)
	}
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if event.RequestID != "" {
		req.Header.Set(echo.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}

// Close is a no-op; the HTTP client holds no resources worth releasing.
func (p *localHTTPPublisher) Close() error {
	return nil
}

func encodePushMessage(event *service.MailEvent, publishedAt time.Time) ([]byte, error) {
	eventData, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	push := PubSubPushMessage{Subscription: localSubscription}
	push.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	push.Message.MessageID = event.EventID
	push.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)
	push.Message.Attributes = mailAttributes(event)

	body, err := json.Marshal(push)

	return body, errors.WithStack(err)
}
