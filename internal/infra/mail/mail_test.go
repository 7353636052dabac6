package mail

import (
	"bufio"
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net"
	"net/mail"
	"strings"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/constants"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Mail: &config.MailConfig{
			Host: "127.0.0.1",
			Port: 2525,
			From: "Storefront <no-reply@storefront.test>",
		},
	}
}

type fakePublisher struct {
	events []*service.MailEvent
	err    error
}

func (p *fakePublisher) PublishMailEvent(_ context.Context, event *service.MailEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)

	return nil
}

func (p *fakePublisher) Close() error { return nil }

type fakeQRCode struct {
	err error
}

func (f *fakeQRCode) GenerateOrderLookupQR(orderNumber, email string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}

	return []byte("png:" + orderNumber + ":" + email), nil
}

func (f *fakeQRCode) OrderLookupURL(orderNumber, email string) string {
	return "https://shop.example.com/orders/" + orderNumber + "?email=" + email
}

func TestDispatcher_Send(t *testing.T) {
	publisher := &fakePublisher{}
	dispatcher := NewDispatcher(publisher, newDiscardLogger())

	err := dispatcher.Send(context.Background(), &service.MailMessage{
		Template:  constants.MailTemplateWelcome,
		To:        "alice@example.com",
		RequestID: "req-9",
	})
	require.NoError(t, err)
	require.Len(t, publisher.events, 1)
	assert.NotEmpty(t, publisher.events[0].EventID)
	assert.Equal(t, "req-9", publisher.events[0].RequestID)
	assert.Equal(t, "alice@example.com", publisher.events[0].Message.To)
}

func TestDispatcher_SendFailures(t *testing.T) {
	dispatcher := NewDispatcher(&fakePublisher{err: errors.New("topic unavailable")}, newDiscardLogger())

	err := dispatcher.Send(context.Background(), &service.MailMessage{Template: "welcome", To: "a@b.c"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMailDispatchFailed))

	err = dispatcher.Send(context.Background(), &service.MailMessage{Template: "welcome"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func orderConfirmationData() map[string]any {
	return map[string]any{
		"store_name":       "Storefront",
		"customer_name":    "Bob",
		"order_number":     "ORD-20260114-ABCDEFGH",
		"items":            []any{map[string]any{"name": "Mug & Saucer", "quantity": float64(2), "total": "20.00"}},
		"subtotal":         "20.00",
		"tax":              "2.00",
		"shipping":         "3.00",
		"total":            "25.00",
		"currency":         "USD",
		"shipping_address": "Bob, 1 Main St, Springfield, IL 62701, US",
		"lookup_url":       "https://shop.example.com/orders/ORD-20260114-ABCDEFGH?email=bob%40example.com",
	}
}

func TestRenderer_OrderConfirmationAttachesQR(t *testing.T) {
	renderer, err := NewRenderer(newTestConfig(), &fakeQRCode{}, newDiscardLogger())
	require.NoError(t, err)

	out, err := renderer.Render(&service.MailMessage{
		Template: constants.MailTemplateOrderConfirmation,
		To:       "bob@example.com",
		Data:     orderConfirmationData(),
	})
	require.NoError(t, err)

	assert.Equal(t, "Storefront <no-reply@storefront.test>", out.From)
	assert.Equal(t, "Your order ORD-20260114-ABCDEFGH is confirmed", out.Subject)
	assert.Contains(t, out.TextBody, "Mug & Saucer x 2  20.00")
	assert.Contains(t, out.TextBody, "Total:    25.00 USD")
	assert.Contains(t, out.HTMLBody, "Mug &amp; Saucer")
	assert.Contains(t, out.HTMLBody, `src="cid:`+QRContentID+`"`)
	require.Len(t, out.Attachments, 1)
	assert.Equal(t, QRContentID, out.Attachments[0].ContentID)
	assert.Equal(t, "png:ORD-20260114-ABCDEFGH:bob@example.com", string(out.Attachments[0].Data))
}

func TestRenderer_QRFailureStillRenders(t *testing.T) {
	renderer, err := NewRenderer(newTestConfig(), &fakeQRCode{err: errors.New("boom")}, newDiscardLogger())
	require.NoError(t, err)

	out, err := renderer.Render(&service.MailMessage{
		Template: constants.MailTemplateOrderConfirmation,
		To:       "bob@example.com",
		Data:     orderConfirmationData(),
	})
	require.NoError(t, err)
	assert.Empty(t, out.Attachments)
	assert.NotContains(t, out.HTMLBody, "cid:")
}

func TestRenderer_VerifyAndWelcome(t *testing.T) {
	renderer, err := NewRenderer(newTestConfig(), nil, newDiscardLogger())
	require.NoError(t, err)

	out, err := renderer.Render(&service.MailMessage{
		Template: constants.MailTemplateVerifyEmail,
		To:       "alice@example.com",
		Data: map[string]any{
			"name":             "Alice",
			"store_name":       "Storefront",
			"verification_url": "https://shop.example.com/auth/verify?token=t&email=alice%40example.com&signature=s",
			"expires_at":       "2026-01-15T12:00:00Z",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Verify your email address", out.Subject)
	assert.Contains(t, out.TextBody, "https://shop.example.com/auth/verify?token=t&email=alice%40example.com&signature=s")
	assert.Contains(t, out.HTMLBody, `href="https://shop.example.com/auth/verify?token=t&amp;email=alice%40example.com&amp;signature=s"`)

	out, err = renderer.Render(&service.MailMessage{
		Template: constants.MailTemplateWelcome,
		To:       "alice@example.com",
		Data:     map[string]any{"name": "Alice", "store_name": "Storefront"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Welcome to Storefront", out.Subject)
}

func TestRenderer_Errors(t *testing.T) {
	renderer, err := NewRenderer(newTestConfig(), nil, newDiscardLogger())
	require.NoError(t, err)

	_, err = renderer.Render(&service.MailMessage{Template: "newsletter", To: "a@b.c"})
	assert.True(t, errors.Is(err, ErrUnknownTemplate))

	_, err = renderer.Render(&service.MailMessage{
		Template: constants.MailTemplateWelcome,
		To:       "alice@example.com",
		Data:     map[string]any{"name": "Alice"},
	})
	assert.Error(t, err)
}

func TestBuildMessage_RelatedWithInlineImage(t *testing.T) {
	out := &service.OutgoingMail{
		From:     "Storefront <no-reply@storefront.test>",
		To:       "bob@example.com",
		Subject:  "Your order is confirmed",
		TextBody: "plain body",
		HTMLBody: "<p>html body</p>",
		Attachments: []service.MailAttachment{{
			Filename:    "qr.png",
			ContentType: "image/png",
			ContentID:   QRContentID,
			Data:        []byte("not really a png"),
		}},
	}

	raw, err := buildMessage(out, time.Date(2026, 1, 14, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	msg, err := mail.ReadMessage(strings.NewReader(string(raw)))
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", msg.Header.Get("To"))

	mediaType, params, err := mime.ParseMediaType(msg.Header.Get("Content-Type"))
	require.NoError(t, err)
	assert.Equal(t, "multipart/related", mediaType)

	reader := multipart.NewReader(msg.Body, params["boundary"])

	altPart, err := reader.NextPart()
	require.NoError(t, err)
	altType, altParams, err := mime.ParseMediaType(altPart.Header.Get("Content-Type"))
	require.NoError(t, err)
	assert.Equal(t, "multipart/alternative", altType)

	altReader := multipart.NewReader(altPart, altParams["boundary"])
	textPart, err := altReader.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "plain body", decodePart(t, textPart))

	imgPart, err := reader.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "<"+QRContentID+">", imgPart.Header.Get("Content-ID"))
	assert.Equal(t, "not really a png", decodePart(t, imgPart))
}

func TestBuildMessage_AlternativeOnly(t *testing.T) {
	raw, err := buildMessage(&service.OutgoingMail{
		From: "a@b.c", To: "d@e.f", Subject: "Grüße", TextBody: "t", HTMLBody: "h",
	}, time.Now())
	require.NoError(t, err)

	msg, err := mail.ReadMessage(strings.NewReader(string(raw)))
	require.NoError(t, err)

	mediaType, _, err := mime.ParseMediaType(msg.Header.Get("Content-Type"))
	require.NoError(t, err)
	assert.Equal(t, "multipart/alternative", mediaType)

	subject, err := new(mime.WordDecoder).DecodeHeader(msg.Header.Get("Subject"))
	require.NoError(t, err)
	assert.Equal(t, "Grüße", subject)
}

func decodePart(t *testing.T, part io.Reader) string {
	t.Helper()

	encoded, err := io.ReadAll(part)
	require.NoError(t, err)
	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(string(encoded), "\r\n", ""))
	require.NoError(t, err)

	return string(decoded)
}

type smtpSession struct {
	from string
	rcpt string
	data string
}

// startFakeSMTP accepts one connection and speaks just enough SMTP for net/smtp.
func startFakeSMTP(t *testing.T) (int, <-chan smtpSession) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	sessions := make(chan smtpSession, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		reader := bufio.NewReader(conn)
		reply := func(line string) { _, _ = conn.Write([]byte(line + "\r\n")) }
		reply("220 fake ESMTP")

		var session smtpSession
		var data strings.Builder
		inData := false
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				return
			}
			if inData {
				if line == ".\r\n" {
					inData = false
					session.data = data.String()
					reply("250 OK")

					continue
				}
				data.WriteString(line)

				continue
			}

			cmd := strings.TrimSpace(line)
			upper := strings.ToUpper(cmd)
			switch {
			case strings.HasPrefix(upper, "EHLO"), strings.HasPrefix(upper, "HELO"):
				reply("250 fake")
			case strings.HasPrefix(upper, "MAIL FROM:"):
				session.from = cmd[len("MAIL FROM:"):]
				reply("250 OK")
			case strings.HasPrefix(upper, "RCPT TO:"):
				session.rcpt = cmd[len("RCPT TO:"):]
				reply("250 OK")
			case upper == "DATA":
				inData = true
				reply("354 go ahead")
			case upper == "QUIT":
				reply("221 bye")
				sessions <- session

				return
			default:
				reply("250 OK")
			}
		}
	}()

	return ln.Addr().(*net.TCPAddr).Port, sessions
}

func TestSMTPSender_Deliver(t *testing.T) {
	port, sessions := startFakeSMTP(t)

	cfg := newTestConfig()
	cfg.Mail.Port = port
	sender, err := NewSMTPSender(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = sender.Deliver(ctx, &service.OutgoingMail{
		From:     "Storefront <no-reply@storefront.test>",
		To:       "bob@example.com",
		Subject:  "Hello",
		TextBody: "plain",
		HTMLBody: "<p>html</p>",
	})
	require.NoError(t, err)

	select {
	case session := <-sessions:
		assert.Equal(t, "<no-reply@storefront.test>", session.from)
		assert.Equal(t, "<bob@example.com>", session.rcpt)
		assert.Contains(t, session.data, "Subject: Hello")
	case <-time.After(5 * time.Second):
		t.Fatal("fake SMTP server did not receive a session")
	}
}

func TestSMTPSender_DialFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	cfg := newTestConfig()
	cfg.Mail.Port = port
	sender, err := NewSMTPSender(cfg)
	require.NoError(t, err)

	err = sender.Deliver(context.Background(), &service.OutgoingMail{
		From: "no-reply@storefront.test", To: "bob@example.com", Subject: "x",
	})
	assert.Error(t, err)
}

func TestNewSMTPSender_Validation(t *testing.T) {
	_, err := NewSMTPSender(&config.Config{})
	assert.Error(t, err)

	cfg := newTestConfig()
	cfg.Mail.From = "not an address"
	_, err = NewSMTPSender(cfg)
	assert.Error(t, err)
}
