// Outbound email delivery. Handlers depend on the Mailer interface so tests
// can substitute a recording fake; the SMTP implementation lives behind it.

package mailer

import (
	"fmt"

	mail "github.com/wneessen/go-mail"

	"github.com/kien091/movie-system/internal/config"
)

// Mailer sends a single plain-text email. Errors are returned to the caller
// so delivery failures can be surfaced instead of silently dropped.
type Mailer interface {
	Send(from, to, subject, body string) error
}

// SMTPMailer delivers mail through the SMTP server from the configuration.
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
}

// NewSMTP creates an SMTPMailer from the mail section of the config.
func NewSMTP(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.Mail.Host,
		port:     cfg.Mail.Port,
		username: cfg.Mail.Username,
		password: cfg.Mail.Password,
	}
}

// Send connects to the SMTP server and delivers one message synchronously.
func (m *SMTPMailer) Send(from, to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return fmt.Errorf("invalid sender address %q: %w", from, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address %q: %w", to, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	opts := []mail.Option{mail.WithPort(m.port)}
	if m.username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.username),
			mail.WithPassword(m.password),
		)
	}
	client, err := mail.NewClient(m.host, opts...)
	if err != nil {
		return fmt.Errorf("could not create mail client: %w", err)
	}
	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("could not send mail to %s: %w", to, err)
	}
	return nil
}
