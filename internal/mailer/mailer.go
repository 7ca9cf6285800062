package mailer

import "gopkg.in/gomail.v2"

// Mailer sends plain-text notifications to listing contacts.
type Mailer interface {
	SendListingVerifiedEmail(toEmail, listingTitle string, verified bool) error
}

type SMTPMailer struct {
	host     string
	port     int
	from     string
	password string
}

func NewSMTPMailer(host string, port int, from, password string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, from: from, password: password}
}

func (m *SMTPMailer) SendListingVerifiedEmail(toEmail, listingTitle string, verified bool) error {
	subject := "Your listing has been verified"
	body := "Your listing '" + listingTitle + "' passed moderation review and now shows a verified badge."
	if !verified {
		subject = "Your listing verification was removed"
		body = "Your listing '" + listingTitle + "' is no longer marked as verified."
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.host, m.port, m.from, m.password)
	return d.DialAndSend(msg)
}
