// Package notification sends transactional e-mail over SMTP
package notification

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

// Mailer sends the e-mails the league backend needs
type Mailer interface {
	SendPaymentReminder(ctx context.Context, email, name, leagueType string, amount int64, registrationID string) error
	SendEmail(ctx context.Context, to, subject, html string) error
}

// SMTPConfig holds the SMTP connection settings
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPMailer is the gomail-backed Mailer
type SMTPMailer struct {
	from     string
	fromName string
	dialer   dialer
}

// NewSMTPMailer creates an SMTPMailer. Each send opens its own connection so
// the mailer can be shared by concurrent reminder workers.
func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		from:     cfg.From,
		fromName: cfg.FromName,
		dialer:   gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// SendEmail sends an HTML e-mail
func (m *SMTPMailer) SendEmail(ctx context.Context, to, subject, html string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, m.fromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %v", to, err)
	}
	return nil
}

// SendPaymentReminder renders and sends the unpaid-registration reminder.
// amount is in rupees.
func (m *SMTPMailer) SendPaymentReminder(ctx context.Context, email, name, leagueType string, amount int64, registrationID string) error {
	leagueName := LeagueName(leagueType)
	body, err := RenderPaymentReminder(ReminderData{
		Name:           name,
		LeagueName:     leagueName,
		Amount:         amount,
		RegistrationID: registrationID,
	})
	if err != nil {
		return err
	}
	return m.SendEmail(ctx, email, fmt.Sprintf("Payment Reminder - %s Registration", leagueName), body)
}

var leagueNames = map[string]string{
	"t20-2026": "T20 League 2026",
	"t10-2026": "T10 League 2026",
	"trial":    "Trial Registration",
}

// LeagueName returns the display name of a league type, or the type itself when unknown
func LeagueName(leagueType string) string {
	if name, ok := leagueNames[leagueType]; ok {
		return name
	}
	return leagueType
}

// ReminderData fills the payment reminder template
type ReminderData struct {
	Name           string
	LeagueName     string
	Amount         int64
	RegistrationID string
}

var reminderTemplate = template.Must(template.New("reminder").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background-color: #4F46E5; color: white; padding: 20px; text-align: center; }
    .content { padding: 20px; background-color: #f9fafb; }
    .footer { padding: 20px; text-align: center; color: #666; font-size: 12px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header"><h1>Turbo Cricket League</h1></div>
    <div class="content">
      <h2>Payment Reminder</h2>
      <p>Dear {{.Name}},</p>
      <p>This is a reminder that your payment for <strong>{{.LeagueName}}</strong> registration is still pending.</p>
      <p><strong>Registration Details:</strong></p>
      <ul>
        <li>League: {{.LeagueName}}</li>
        <li>Amount: &#8377;{{.Amount}}</li>
        <li>Registration ID: {{.RegistrationID}}</li>
      </ul>
      <p>Please complete your payment to secure your spot in the league.</p>
      <p>If you have already made the payment, please ignore this email.</p>
      <p>Best regards,<br>Turbo Cricket League Team</p>
    </div>
    <div class="footer"><p>This is an automated email. Please do not reply to this email.</p></div>
  </div>
</body>
</html>
`))

// RenderPaymentReminder renders the reminder HTML. Player-supplied values are escaped.
func RenderPaymentReminder(data ReminderData) (string, error) {
	var buf bytes.Buffer
	if err := reminderTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render reminder: %v", err)
	}
	return buf.String(), nil
}
