package mail

import (
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/mail.v2"
)

var ErrNoRecipients = errors.New("no recipients")

type Attachment struct {
	Name    string
	Content io.Reader
}

// Sender delivers alert notifications and health reports.
type Sender interface {
	SendMail(to []string, subject, htmlBody, textBody string, attachments []Attachment) error
}

type Dialer interface {
	DialAndSend(m ...*mail.Message) error
}

type Config struct {
	Email    string
	Password string
	Host     string
	Port     int
	FromName string
	Timeout  time.Duration
}

type sender struct {
	email    string
	fromName string
	dialer   Dialer
}

func (s *sender) SendMail(to []string, subject, htmlBody, textBody string, attachments []Attachment) error {
	if len(to) == 0 {
		return fmt.Errorf("sender.SendMail: %w", ErrNoRecipients)
	}
	m := mail.NewMessage()

	if s.fromName != "" {
		m.SetAddressHeader("From", s.email, s.fromName)
	} else {
		m.SetHeader("From", s.email)
	}
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetDateHeader("Date", time.Now())

	// text/plain first so clients that prefer html still pick the richer part
	switch {
	case htmlBody != "" && textBody != "":
		m.SetBody("text/plain", textBody)
		m.AddAlternative("text/html", htmlBody)
	case htmlBody != "":
		m.SetBody("text/html", htmlBody)
	default:
		m.SetBody("text/plain", textBody)
	}

	for _, attachment := range attachments {
		if attachment.Content == nil || attachment.Name == "" {
			continue
		}
		content := attachment.Content
		m.Attach(attachment.Name, mail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, content)
			return err
		}))
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("sender.SendMail: %w", err)
	}
	return nil
}

func NewMailSender(cfg Config) Sender {
	dialer := mail.NewDialer(cfg.Host, cfg.Port, cfg.Email, cfg.Password)
	if cfg.Timeout > 0 {
		dialer.Timeout = cfg.Timeout
	}
	return &sender{
		email:    cfg.Email,
		fromName: cfg.FromName,
		dialer:   dialer,
	}
}
