package utils

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/gomail.v2"
)

// EmailConfig holds email configuration
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

var emailConfig EmailConfig

// ConfigureEmail sets the SMTP settings. An empty Host disables sending.
func ConfigureEmail(cfg EmailConfig) {
	emailConfig = cfg
}

// EmailEnabled reports whether SMTP is configured
func EmailEnabled() bool {
	return emailConfig.Host != ""
}

// SendEmail sends an HTML email via SMTP
func SendEmail(to, subject, body string) error {
	if !EmailEnabled() {
		LogDebug("Email disabled, skipping %q to %s", subject, to)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", emailConfig.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(emailConfig.Host, emailConfig.Port, emailConfig.Username, emailConfig.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendPurchaseConfirmation emails the receipt summary of a completed purchase
func SendPurchaseConfirmation(to, name, courseTitle string, purchaseID uint, paid decimal.Decimal) error {
	body := fmt.Sprintf(`
		<h2>Thank you for your purchase, %s!</h2>
		<p>You now have access to <strong>%s</strong>.</p>
		<p>Transaction #%d &middot; Amount paid: %s</p>
		<p>You can download the receipt from your transaction history.</p>
	`, name, courseTitle, purchaseID, paid.StringFixed(2))

	return SendEmail(to, fmt.Sprintf("Your %s receipt #%d", AppName, purchaseID), body)
}
