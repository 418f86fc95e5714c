package mail

import (
	"errors"
	"net/smtp"
	"testing"

	"folio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendContactNotification(t *testing.T) {
	var (
		calls   int
		gotAddr string
		gotFrom string
		gotTo   []string
		gotMsg  []byte
	)

	m := NewMailer("operator@example.com", "secret")
	m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		calls++
		gotAddr = addr
		gotFrom = from
		gotTo = to
		gotMsg = msg
		return nil
	}

	err := m.SendContactNotification(models.ContactRequest{
		Name:  "Ada",
		Email: "ada@example.com",
		Phone: "555-1234",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "one message per submission")
	assert.Equal(t, "smtp.gmail.com:587", gotAddr)
	assert.Equal(t, "operator@example.com", gotFrom)
	assert.Equal(t, []string{"operator@example.com"}, gotTo,
		"the operator is the recipient, never the submitter")

	msg := string(gotMsg)
	assert.Contains(t, msg, "Subject: New Contact Form Submission")
	assert.Contains(t, msg, "Content-Type: text/html")
	assert.Contains(t, msg, "Ada")
	assert.Contains(t, msg, "555-1234")
}

func TestSendContactNotification_TransportError(t *testing.T) {
	m := NewMailer("operator@example.com", "secret")

	calls := 0
	m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		calls++
		return errors.New("535 authentication failed")
	}

	err := m.SendContactNotification(models.ContactRequest{
		Name:  "Ada",
		Email: "ada@example.com",
		Phone: "555-1234",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "535 authentication failed")
	assert.Equal(t, 1, calls, "no retry on transport failure")
}
