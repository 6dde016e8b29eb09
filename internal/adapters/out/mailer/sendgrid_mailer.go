// Package mailer delivers verification links and one-time codes, either
// through SendGrid or, without an API key, to the application log.
package mailer

import (
	"context"
	"fmt"
	"html"
	"time"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendClient is the part of *sendgrid.Client the mailer uses.
type sendClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// SendGridMailer implements ports.Mailer over the SendGrid v3 API.
type SendGridMailer struct {
	client sendClient
	from   *mail.Email
}

func NewSendGridMailer(apiKey, fromName, fromAddress string) *SendGridMailer {
	return newSendGridMailer(sendgrid.NewSendClient(apiKey), fromName, fromAddress)
}

func newSendGridMailer(client sendClient, fromName, fromAddress string) *SendGridMailer {
	return &SendGridMailer{client: client, from: mail.NewEmail(fromName, fromAddress)}
}

func (m *SendGridMailer) SendVerificationEmail(ctx context.Context, to, name, link string) error {
	subject, text, body := verificationMessage(name, link)
	return m.send(ctx, mail.NewEmail(name, to), subject, text, body)
}

func (m *SendGridMailer) SendOneTimeCode(ctx context.Context, to, code string, ttl time.Duration) error {
	subject, text, body := oneTimeCodeMessage(code, ttl)
	return m.send(ctx, mail.NewEmail("", to), subject, text, body)
}

func (m *SendGridMailer) send(ctx context.Context, to *mail.Email, subject, text, body string) error {
	resp, err := m.client.SendWithContext(ctx, mail.NewSingleEmail(m.from, subject, to, text, body))
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

func verificationMessage(name, link string) (subject, text, body string) {
	subject = "Verify your e-mail address"
	text = fmt.Sprintf("Hello %s,\n\nConfirm your e-mail address by opening this link:\n%s\n", name, link)
	body = fmt.Sprintf(
		`<p>Hello %s,</p><p>Confirm your e-mail address by opening <a href="%s">this link</a>.</p>`,
		html.EscapeString(name), html.EscapeString(link),
	)
	return subject, text, body
}

func oneTimeCodeMessage(code string, ttl time.Duration) (subject, text, body string) {
	minutes := int(ttl.Minutes())
	subject = "Your access code"
	text = fmt.Sprintf("Your access code is %s. It expires in %d minutes.\n", code, minutes)
	body = fmt.Sprintf("<p>Your access code is <strong>%s</strong>. It expires in %d minutes.</p>", code, minutes)
	return subject, text, body
}
