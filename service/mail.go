package service

import (
	"fmt"
	"net/smtp"

	"github.com/Alphiii2005/alphabot-live/platform"
	"github.com/jordan-wright/email"
)

// Mailer sends account mail over SMTP. A nil Mailer (no SMTP host
// configured) disables mail entirely.
type Mailer struct {
	cfg *platform.Config
}

func NewMailer(cfg *platform.Config) *Mailer {
	if cfg.SMTPHost == "" {
		return nil
	}
	return &Mailer{cfg: cfg}
}

func (m *Mailer) SendWelcome(to, username string) {
	e := email.NewEmail()
	e.From = m.cfg.MailFrom
	e.To = []string{to}
	e.Subject = "Welcome to AlphaBot"
	e.Text = []byte(fmt.Sprintf("Hi %s,\n\nYour AlphaBot account is ready. Log in to start chatting.\n", username))

	addr := fmt.Sprintf("%s:%s", m.cfg.SMTPHost, m.cfg.SMTPPort)
	auth := smtp.PlainAuth("", m.cfg.SMTPUser, m.cfg.SMTPPass, m.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		logger.Warnf("Failed to send welcome mail to %s: %v", to, err)
	}
}
