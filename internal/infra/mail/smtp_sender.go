package mail

import (
	"context"
	"crypto/tls"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

const (
	implicitTLSPort    = 465
	defaultSMTPTimeout = 30 * time.Second
)

// smtpSender delivers mail through an SMTP relay, upgrading with STARTTLS when offered.
type smtpSender struct {
	host     string
	port     int
	username string
	password string
	now      func() time.Time
}

// NewSMTPSender creates a MailSender from the mail configuration
func NewSMTPSender(cfg *config.Config) (service.MailSender, error) {
	if cfg.Mail == nil || cfg.Mail.Host == "" || cfg.Mail.Port == 0 {
		return nil, errors.New("mail host and port are required")
	}
	if _, err := mail.ParseAddress(cfg.Mail.From); err != nil {
		return nil, errors.Wrap(err, "invalid mail from address")
	}

	return &smtpSender{
		host:     cfg.Mail.Host,
		port:     cfg.Mail.Port,
		username: cfg.Mail.Username,
		password: cfg.Mail.Password,
		now:      time.Now,
	}, nil
}

// Deliver sends one message. All errors are transport errors and worth retrying.
func (s *smtpSender) Deliver(ctx context.Context, out *service.OutgoingMail) error {
	from, err := mail.ParseAddress(out.From)
	if err != nil {
		return errors.Wrap(err, "invalid from address")
	}
	to, err := mail.ParseAddress(out.To)
	if err != nil {
		return errors.Wrap(err, "invalid recipient address")
	}

	body, err := buildMessage(out, s.now())
	if err != nil {
		return errors.Wrap(err, "build mime message")
	}

	client, err := s.dial(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	if s.port != implicitTLSPort {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(&tls.Config{ServerName: s.host, MinVersion: tls.VersionTLS12}); err != nil {
				return errors.Wrap(err, "smtp starttls")
			}
		}
	}
	if s.username != "" {
		if err := client.Auth(smtp.PlainAuth("", s.username, s.password, s.host)); err != nil {
			return errors.Wrap(err, "smtp auth")
		}
	}
	if err := client.Mail(from.Address); err != nil {
		return errors.Wrap(err, "smtp mail from")
	}
	if err := client.Rcpt(to.Address); err != nil {
		return errors.Wrap(err, "smtp rcpt to")
	}

	wc, err := client.Data()
	if err != nil {
		return errors.Wrap(err, "smtp data")
	}
	if _, err := wc.Write(body); err != nil {
		return errors.Wrap(err, "smtp write body")
	}
	if err := wc.Close(); err != nil {
		return errors.Wrap(err, "smtp close body")
	}

	return errors.WithStack(client.Quit())
}

func (s *smtpSender) dial(ctx context.Context) (*smtp.Client, error) {
	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = s.now().Add(defaultSMTPTimeout)
	}
	dialer := &net.Dialer{Deadline: deadline}

	var conn net.Conn
	var err error
	if s.port == implicitTLSPort {
		conn, err = (&tls.Dialer{NetDialer: dialer, Config: &tls.Config{ServerName: s.host, MinVersion: tls.VersionTLS12}}).DialContext(ctx, "tcp", addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return nil, errors.Wrap(err, "smtp dial")
	}
	if err := conn.SetDeadline(deadline); err != nil {
		conn.Close()

		return nil, errors.Wrap(err, "smtp set deadline")
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()

		return nil, errors.Wrap(err, "smtp handshake")
	}

	return client, nil
}
