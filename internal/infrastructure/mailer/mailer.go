package mailer

import "gopkg.in/gomail.v2"

// SMTP sends plain-text notices through a configured SMTP relay.
type SMTP struct {
	host string
	port int
	user string
	pass string
}

func NewSMTP(host string, port int, user, pass string) *SMTP {
	return &SMTP{host: host, port: port, user: user, pass: pass}
}

func (s *SMTP) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.user)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.user, s.pass)
	return d.DialAndSend(m)
}
