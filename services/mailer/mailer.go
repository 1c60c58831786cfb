package mailer

import (
	"fmt"
	"net/smtp"
	"os"
)

// Mailer sends invoice links over SMTP. It is constructed once at process
// start and injected into the controllers that need it; there is no package
// level client.
type Mailer struct {
	host     string
	port     string
	username string
	password string
	from     string
	baseURL  string
}

// NewFromEnv builds a mailer from SMTP_* configuration. An unconfigured host
// yields a disabled mailer whose Send methods report an error.
func NewFromEnv() *Mailer {
	return &Mailer{
		host:     os.Getenv("SMTP_HOST"),
		port:     os.Getenv("SMTP_PORT"),
		username: os.Getenv("SMTP_USERNAME"),
		password: os.Getenv("SMTP_PASSWORD"),
		from:     os.Getenv("SMTP_FROM"),
		baseURL:  os.Getenv("FRONTEND_URL"),
	}
}

// Enabled reports whether SMTP is configured.
func (m *Mailer) Enabled() bool {
	return m.host != ""
}

// SendInvoiceLink mails the customer a link carrying the signed invoice token.
func (m *Mailer) SendInvoiceLink(to, customerName, token string) error {
	if !m.Enabled() {
		return fmt.Errorf("mailer is not configured")
	}

	subject := "Your salon invoice"
	body := fmt.Sprintf(
		"Hello %s,\r\n\r\nYour invoice is ready. You can view it here:\r\n%s/invoice?token=%s\r\n\r\nThank you for your visit.\r\n",
		customerName, m.baseURL, token,
	)
	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", m.from, to, subject, body))

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}
	return smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{to}, msg)
}
