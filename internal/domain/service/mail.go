package service

import (
	"context"
)

// MailMessage is a request to send one templated email.
type MailMessage struct {
	Template  string         `json:"template"`
	To        string         `json:"to"`
	Data      map[string]any `json:"data,omitempty"`
	RequestID string         `json:"request_id,omitempty"` // For distributed tracing
}

// MailDispatcher queues templated mail. A nil error means the message was accepted;
// delivery itself happens asynchronously and callers never retry inline.
type MailDispatcher interface {
	Send(ctx context.Context, msg *MailMessage) error
}

// OutgoingMail is a fully rendered email ready for transport.
type OutgoingMail struct {
	From        string
	To          string
	Subject     string
	TextBody    string
	HTMLBody    string
	Attachments []MailAttachment
}

// MailAttachment is an inline file referenced from the HTML body by ContentID.
type MailAttachment struct {
	Filename    string
	ContentType string
	ContentID   string
	Data        []byte
}

// MailSender delivers rendered mail.
type MailSender interface {
	Deliver(ctx context.Context, mail *OutgoingMail) error
}

// MailRenderer turns a templated message into a deliverable mail.
// Render errors are permanent: retrying the same message cannot succeed.
type MailRenderer interface {
	Render(msg *MailMessage) (*OutgoingMail, error)
}
