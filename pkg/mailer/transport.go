package mailer

import (
	"context"
	"log/slog"

	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/pkg/apperr"

	mail "gopkg.in/mail.v2"
)

// Transport delivers a rendered Message.
type Transport interface {
	Send(ctx context.Context, m Message) error
}

type SMTPTransport struct {
	dialer *mail.Dialer
}

func NewSMTPTransport(host string, port int, user, pass string) *SMTPTransport {
	return &SMTPTransport{dialer: mail.NewDialer(host, port, user, pass)}
}

func (t *SMTPTransport) Send(ctx context.Context, m Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := mail.NewMessage()
	msg.SetHeader("From", m.From)
	if len(m.To) > 0 {
		msg.SetHeader("To", m.To...)
	} else {
		// bcc-only blast: address it to ourselves
		msg.SetHeader("To", m.From)
	}
	if len(m.Bcc) > 0 {
		msg.SetHeader("Bcc", m.Bcc...)
	}
	msg.SetHeader("Subject", m.Subject)
	msg.SetBody("text/html", m.HTML)

	if err := t.dialer.DialAndSend(msg); err != nil {
		return apperr.Wrap(apperr.KindDelivery, "mail delivery failed", err)
	}
	return nil
}

// LogTransport only logs; used when MAIL_HOST is not configured.
type LogTransport struct {
	Logger *slog.Logger
}

func (t LogTransport) Send(_ context.Context, m Message) error {
	l := t.Logger
	if l == nil {
		l = slog.Default()
	}
	l.Info("mail (not sent, no MAIL_HOST)",
		"to", m.To,
		"bcc", len(m.Bcc),
		"subject", m.Subject,
	)
	return nil
}
