package mail

import (
	"bytes"
	"embed"
	htmltemplate "html/template"
	"log/slog"
	"strings"
	texttemplate "text/template"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// QRContentID is the Content-ID of the inline order QR image.
const QRContentID = "order-qr@storefront"

// ErrUnknownTemplate is returned for templates the renderer does not know.
var ErrUnknownTemplate = errors.New("unknown mail template")

var subjects = map[string]string{
	constants.MailTemplateVerifyEmail:       "Verify your email address",
	constants.MailTemplateWelcome:           "Welcome to {{.store_name}}",
	constants.MailTemplateOrderConfirmation: "Your order {{.order_number}} is confirmed",
}

type mailTemplate struct {
	subject *texttemplate.Template
	text    *texttemplate.Template
	html    *htmltemplate.Template
}

// templateRenderer renders the embedded templates and attaches the order QR code.
type templateRenderer struct {
	from      string
	templates map[string]*mailTemplate
	qrcode    service.QRCodeService
	logger    *slog.Logger
}

// NewRenderer parses every embedded template up front so a bad template fails startup.
func NewRenderer(cfg *config.Config, qrcode service.QRCodeService, logger *slog.Logger) (service.MailRenderer, error) {
	from := ""
	if cfg.Mail != nil {
		from = cfg.Mail.From
	}

	r := &templateRenderer{
		from:      from,
		templates: make(map[string]*mailTemplate, len(subjects)),
		qrcode:    qrcode,
		logger:    logger,
	}

	for name, subject := range subjects {
		tmpl, err := parseMailTemplate(name, subject)
		if err != nil {
			return nil, err
		}
		r.templates[name] = tmpl
	}

	return r, nil
}

func parseMailTemplate(name, subject string) (*mailTemplate, error) {
	subjectTmpl, err := texttemplate.New(name + ".subject").Option("missingkey=error").Parse(subject)
	if err != nil {
		return nil, errors.Wrapf(err, "parse subject for %s", name)
	}

	textTmpl, err := texttemplate.New(name+".txt.tmpl").Option("missingkey=error").ParseFS(templateFS, "templates/"+name+".txt.tmpl")
	if err != nil {
		return nil, errors.Wrapf(err, "parse text template %s", name)
	}

	htmlTmpl, err := htmltemplate.New(name+".html.tmpl").Option("missingkey=error").ParseFS(templateFS, "templates/"+name+".html.tmpl")
	if err != nil {
		return nil, errors.Wrapf(err, "parse html template %s", name)
	}

	return &mailTemplate{subject: subjectTmpl, text: textTmpl, html: htmlTmpl}, nil
}

// Render executes the subject, text and html templates for msg.
func (r *templateRenderer) Render(msg *service.MailMessage) (*service.OutgoingMail, error) {
	tmpl, ok := r.templates[msg.Template]
	if !ok {
		return nil, errors.Wrap(ErrUnknownTemplate, msg.Template)
	}

	data := make(map[string]any, len(msg.Data)+1)
	for k, v := range msg.Data {
		data[k] = v
	}

	var attachments []service.MailAttachment
	data["qr_src"] = htmltemplate.URL("")
	if msg.Template == constants.MailTemplateOrderConfirmation {
		if attachment, ok := r.orderQR(data, msg.To); ok {
			attachments = append(attachments, attachment)
			data["qr_src"] = htmltemplate.URL("cid:" + QRContentID)
		}
	}

	var subject, text, html bytes.Buffer
	if err := tmpl.subject.Execute(&subject, data); err != nil {
		return nil, errors.Wrapf(err, "render subject %s", msg.Template)
	}
	if err := tmpl.text.Execute(&text, data); err != nil {
		return nil, errors.Wrapf(err, "render text %s", msg.Template)
	}
	if err := tmpl.html.Execute(&html, data); err != nil {
		return nil, errors.Wrapf(err, "render html %s", msg.Template)
	}

	return &service.OutgoingMail{
		From:        r.from,
		To:          msg.To,
		Subject:     strings.TrimSpace(subject.String()),
		TextBody:    text.String(),
		HTMLBody:    html.String(),
		Attachments: attachments,
	}, nil
}

// orderQR builds the inline QR attachment. A missing order number or QR failure
// only drops the image; the confirmation still goes out.
func (r *templateRenderer) orderQR(data map[string]any, email string) (service.MailAttachment, bool) {
	orderNumber, _ := data["order_number"].(string)
	if orderNumber == "" || r.qrcode == nil {
		return service.MailAttachment{}, false
	}

	png, err := r.qrcode.GenerateOrderLookupQR(orderNumber, email)
	if err != nil {
		r.logger.Warn("[Mail] Failed to generate order QR code",
			slog.String("order_number", orderNumber),
			slog.Any("error", err),
		)

		return service.MailAttachment{}, false
	}

	return service.MailAttachment{
		Filename:    orderNumber + ".png",
		ContentType: "image/png",
		ContentID:   QRContentID,
		Data:        png,
	}, true
}
