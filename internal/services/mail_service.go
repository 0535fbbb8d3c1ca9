package services

import (
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/BahathJob/Bahath-Jobs-sub000/internal/config"
)

// Mailer sends outbound email. The SMTP implementation is used in
// production; tests substitute a recording fake.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password),
		from:   cfg.SMTP.From,
	}
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return m.dialer.DialAndSend(msg)
}

// NopMailer drops mail on the floor. Used when SMTP is not configured so
// local environments still work end to end.
type NopMailer struct {
	Logger *zap.SugaredLogger
}

func (m *NopMailer) Send(to, subject, _ string) error {
	if m.Logger != nil {
		m.Logger.Infow("mail suppressed (smtp not configured)", "to", to, "subject", subject)
	}
	return nil
}
