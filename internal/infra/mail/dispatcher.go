// Package mail queues, renders and delivers transactional email.
package mail

import (
	"context"
	"log/slog"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// pubsubDispatcher hands mail to the event publisher; the mail worker does the rest.
type pubsubDispatcher struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewDispatcher creates a MailDispatcher backed by the configured EventPublisher
func NewDispatcher(publisher service.EventPublisher, logger *slog.Logger) service.MailDispatcher {
	return &pubsubDispatcher{
		publisher: publisher,
		logger:    logger,
	}
}

// Send publishes msg as a MailEvent.
func (d *pubsubDispatcher) Send(ctx context.Context, msg *service.MailMessage) error {
	if msg == nil || msg.Template == "" || msg.To == "" {
		return domainerrors.ErrValidationFailed.WithDetails("mail template and recipient are required")
	}

	event := &service.MailEvent{
		EventID:   uuid.New().String(),
		RequestID: msg.RequestID,
		Message:   msg,
	}

	if err := d.publisher.PublishMailEvent(ctx, event); err != nil {
		d.logger.Warn("[Mail] Failed to publish mail event",
			slog.String("event_id", event.EventID),
			slog.String("template", msg.Template),
			slog.Any("error", err),
		)

		return errors.Wrap(domainerrors.ErrMailDispatchFailed, err.Error())
	}

	return nil
}
