package delivery

import (
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"mime/quotedprintable"
	"strings"
)

// buildMIME composes a multipart/alternative message with plain-text and
// HTML parts, the order mail clients expect (plain first, HTML preferred).
func buildMIME(msg Message, from, replyTo string) (string, error) {
	var sb strings.Builder
	mw := multipart.NewWriter(&sb)

	if from != "" {
		fmt.Fprintf(&sb, "From: %s\r\n", from)
	}
	if replyTo != "" {
		fmt.Fprintf(&sb, "Reply-To: %s\r\n", replyTo)
	}
	fmt.Fprintf(&sb, "To: %s\r\n", msg.To)
	fmt.Fprintf(&sb, "Subject: %s\r\n", msg.Subject)
	sb.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&sb, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", mw.Boundary())

	for _, part := range []struct {
		contentType string
		body        string
	}{
		{"text/plain; charset=\"UTF-8\"", msg.BodyText},
		{"text/html; charset=\"UTF-8\"", msg.BodyHTML},
	} {
		header := map[string][]string{
			"Content-Type":              {part.contentType},
			"Content-Transfer-Encoding": {"quoted-printable"},
		}
		w, err := mw.CreatePart(header)
		if err != nil {
			return "", err
		}
		qp := quotedprintable.NewWriter(w)
		if _, err := qp.Write([]byte(part.body)); err != nil {
			return "", err
		}
		if err := qp.Close(); err != nil {
			return "", err
		}
	}
	if err := mw.Close(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// toRawMessage encodes a MIME message the way the Gmail API expects.
func toRawMessage(mime string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(mime))
}
