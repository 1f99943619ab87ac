package mail

import (
	"errors"
	"io"

	"gopkg.in/mail.v2"
)

var ErrNoRecipients = errors.New("mail: no recipients")

type Attachment struct {
	Name    string
	Content io.Reader
}

type Message struct {
	To          []string
	Subject     string
	HTMLBody    string
	TextBody    string
	Attachments []Attachment
}

type Sender interface {
	SendMail(msg Message) error
}

type Dialer interface {
	DialAndSend(m ...*mail.Message) error
}

type sender struct {
	email  string
	dialer Dialer
}

func (s *sender) SendMail(msg Message) error {
	if len(msg.To) == 0 {
		return ErrNoRecipients
	}
	m := mail.NewMessage()

	m.SetHeader("From", s.email)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)

	switch {
	case msg.TextBody != "" && msg.HTMLBody != "":
		m.SetBody("text/plain", msg.TextBody)
		m.AddAlternative("text/html", msg.HTMLBody)
	case msg.HTMLBody != "":
		m.SetBody("text/html", msg.HTMLBody)
	default:
		m.SetBody("text/plain", msg.TextBody)
	}

	for _, attachment := range msg.Attachments {
		if attachment.Content != nil && attachment.Name != "" {
			content := attachment.Content
			m.Attach(attachment.Name, mail.SetCopyFunc(func(w io.Writer) error {
				_, err := io.Copy(w, content)
				return err
			}))
		}
	}

	return s.dialer.DialAndSend(m)
}

func NewMailSender(email, password, host string, port int) Sender {
	return &sender{
		email:  email,
		dialer: mail.NewDialer(host, port, email, password),
	}
}
