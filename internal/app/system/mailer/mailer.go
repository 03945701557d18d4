// internal/app/system/mailer/mailer.go

// Package mailer delivers the site's outbound email. The only mail this
// application sends is the lead notification to the sales inbox (the smtp
// lead sink), so the mailer is deliberately narrow: one message shape,
// text plus HTML alternatives, plain SMTP.
package mailer

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/smtp"
	"net/textproto"

	"go.uber.org/zap"
)

// Config holds the SMTP settings for the notification mailer. User and
// Pass are optional; when blank the mailer talks to the server without
// authentication (Mailpit in dev, a localhost relay in production).
type Config struct {
	Host     string
	Port     int
	User     string
	Pass     string
	From     string // envelope and header sender, e.g. noreply@payaana.in
	FromName string // display name shown in the inbox
}

// Mailer sends lead notification emails over SMTP.
type Mailer struct {
	cfg Config
	log *zap.Logger
}

// New creates a Mailer with the given configuration.
func New(cfg Config, log *zap.Logger) *Mailer {
	return &Mailer{cfg: cfg, log: log}
}

// Email is one outbound notification. Lead notifications always carry
// both a plain text and an HTML rendering, so both bodies are required.
type Email struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Send delivers the email as a multipart/alternative message.
func (m *Mailer) Send(email Email) error {
	msg, err := buildMessage(m.cfg, email)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.User != "" && m.cfg.Pass != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{email.To}, msg); err != nil {
		m.log.Error("lead notification send failed",
			zap.String("to", email.To),
			zap.String("subject", email.Subject),
			zap.Error(err))
		return fmt.Errorf("send lead notification: %w", err)
	}

	m.log.Info("lead notification sent",
		zap.String("to", email.To),
		zap.String("subject", email.Subject))
	return nil
}

// buildMessage assembles the RFC 5322 message: headers first, then the
// text and HTML parts under the multipart writer's generated boundary.
func buildMessage(cfg Config, email Email) ([]byte, error) {
	if email.TextBody == "" || email.HTMLBody == "" {
		return nil, fmt.Errorf("lead notification needs both text and html bodies")
	}

	from := cfg.From
	if cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.FromName, cfg.From)
	}

	var buf bytes.Buffer
	alt := multipart.NewWriter(&buf)

	buf.WriteString("From: " + from + "\r\n")
	buf.WriteString("To: " + email.To + "\r\n")
	buf.WriteString("Subject: " + email.Subject + "\r\n")
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString(`Content-Type: multipart/alternative; boundary="` + alt.Boundary() + "\"\r\n")
	buf.WriteString("\r\n")

	for _, part := range []struct {
		contentType string
		body        string
	}{
		{"text/plain; charset=UTF-8", email.TextBody},
		{"text/html; charset=UTF-8", email.HTMLBody},
	} {
		w, err := alt.CreatePart(textproto.MIMEHeader{
			"Content-Type": {part.contentType},
		})
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(part.body)); err != nil {
			return nil, err
		}
	}

	if err := alt.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
