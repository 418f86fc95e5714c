package mail

import (
	"fmt"
	"log"
	"net/smtp"
	"time"

	"folio/models"
)

// Fixed transport: the relay host and port are part of the deployment, only
// the credentials come from configuration.
const (
	smtpHost = "smtp.gmail.com"
	smtpPort = "587"
)

const contactSubject = "New Contact Form Submission"

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Mailer sends contact-form notifications over SMTP. Every notification goes
// to the operator's own address (the authenticated user), never the
// submitter. No retries: a transport error is reported once to the caller.
type Mailer struct {
	user     string
	password string
	send     sendFunc
}

func NewMailer(user, password string) *Mailer {
	return &Mailer{
		user:     user,
		password: password,
		send:     smtp.SendMail,
	}
}

// SendContactNotification renders the submission into the fixed HTML layout
// and dispatches exactly one message.
func (m *Mailer) SendContactNotification(req models.ContactRequest) error {
	body, err := RenderContactEmail(req, time.Now().Year())
	if err != nil {
		return err
	}

	message := []byte(fmt.Sprintf(
		"From: \"Contact Form\" <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s\r\n",
		m.user, m.user, contactSubject, body,
	))

	auth := smtp.PlainAuth("", m.user, m.password, smtpHost)
	addr := smtpHost + ":" + smtpPort

	if err := m.send(addr, auth, m.user, []string{m.user}, message); err != nil {
		log.Printf("Failed to send contact email: %v", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Printf("Contact email sent for %s <%s>", req.Name, req.Email)
	return nil
}
