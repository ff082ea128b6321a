package mailer

import (
	"context"
	"crypto/tls"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"

	"github.com/vfg2006/commerce-insights-api/internal/config"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/pkg/log"
)

// Dialer é o subconjunto do gomail.Dialer usado para enviar mensagens
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPMailer struct {
	dialer Dialer
	from   string
}

func NewSMTPMailer(cfg config.SMTP) *SMTPMailer {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	dialer.TLSConfig = &tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12}

	return NewWithDialer(dialer, cfg.From)
}

func NewWithDialer(dialer Dialer, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: dialer,
		from:   from,
	}
}

// Send envia o e-mail em texto puro. O gomail não aceita contexto, então o envio
// roda em uma goroutine e o cancelamento do contexto apenas deixa de esperar.
func (m *SMTPMailer) Send(ctx context.Context, email domain.RestockEmail) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email.To)
	msg.SetHeader("Subject", email.Subject)
	msg.SetBody("text/plain", email.Body)

	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return errors.Wrap(err, "smtp send failed")
		}
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "smtp send aborted")
	}

	log.ForContext(ctx).WithField("to", email.To).Info("mailer: email sent")

	return nil
}
