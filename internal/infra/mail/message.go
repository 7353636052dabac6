package mail

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"mime"
	"mime/multipart"
	"net/textproto"
	"time"

	"storefront/internal/domain/service"
)

const base64LineLength = 76

// buildMessage renders RFC 5322 headers and a MIME body. Inline attachments wrap
// the text/html alternative in multipart/related so the HTML can reference them by cid.
func buildMessage(mail *service.OutgoingMail, now time.Time) ([]byte, error) {
	var alt bytes.Buffer
	altWriter := multipart.NewWriter(&alt)
	if err := writeTextPart(altWriter, "text/plain; charset=utf-8", mail.TextBody); err != nil {
		return nil, err
	}
	if err := writeTextPart(altWriter, "text/html; charset=utf-8", mail.HTMLBody); err != nil {
		return nil, err
	}
	if err := altWriter.Close(); err != nil {
		return nil, err
	}

	var msg bytes.Buffer
	writeHeader(&msg, "From", mail.From)
	writeHeader(&msg, "To", mail.To)
	writeHeader(&msg, "Subject", mime.QEncoding.Encode("utf-8", mail.Subject))
	writeHeader(&msg, "Date", now.Format(time.RFC1123Z))
	writeHeader(&msg, "MIME-Version", "1.0")

	if len(mail.Attachments) == 0 {
		writeHeader(&msg, "Content-Type", "multipart/alternative; boundary="+altWriter.Boundary())
		msg.WriteString("\r\n")
		msg.Write(alt.Bytes())

		return msg.Bytes(), nil
	}

	var related bytes.Buffer
	relatedWriter := multipart.NewWriter(&related)

	altPart, err := relatedWriter.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"multipart/alternative; boundary=" + altWriter.Boundary()},
	})
	if err != nil {
		return nil, err
	}
	if _, err := altPart.Write(alt.Bytes()); err != nil {
		return nil, err
	}

	for _, attachment := range mail.Attachments {
		part, err := relatedWriter.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {attachment.ContentType},
			"Content-Transfer-Encoding": {"base64"},
			"Content-ID":                {"<" + attachment.ContentID + ">"},
			"Content-Disposition":       {fmt.Sprintf("inline; filename=%q", attachment.Filename)},
		})
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(wrapBase64(attachment.Data)); err != nil {
			return nil, err
		}
	}
	if err := relatedWriter.Close(); err != nil {
		return nil, err
	}

	writeHeader(&msg, "Content-Type", "multipart/related; boundary="+relatedWriter.Boundary())
	msg.WriteString("\r\n")
	msg.Write(related.Bytes())

	return msg.Bytes(), nil
}

func writeHeader(buf *bytes.Buffer, key, value string) {
	buf.WriteString(key + ": " + value + "\r\n")
}

func writeTextPart(w *multipart.Writer, contentType, body string) error {
	part, err := w.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {contentType},
		"Content-Transfer-Encoding": {"base64"},
	})
	if err != nil {
		return err
	}

	_, err = part.Write(wrapBase64([]byte(body)))

	return err
}

func wrapBase64(data []byte) []byte {
	encoded := base64.StdEncoding.EncodeToString(data)

	var out bytes.Buffer
	for len(encoded) > base64LineLength {
		out.WriteString(encoded[:base64LineLength] + "\r\n")
		encoded = encoded[base64LineLength:]
	}
	out.WriteString(encoded + "\r\n")

	return out.Bytes()
}
