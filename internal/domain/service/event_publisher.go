package service

import (
	"context"
)

// MailEvent is the message carried over Pub/Sub to the mail worker.
type MailEvent struct {
	EventID   string       `json:"event_id"`
	RequestID string       `json:"request_id,omitempty"` // For distributed tracing
	Message   *MailMessage `json:"message"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMailEvent publishes a mail event for async delivery
	PublishMailEvent(ctx context.Context, event *MailEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
