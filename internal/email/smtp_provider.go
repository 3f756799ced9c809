package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPProvider delivers mail over SMTP via gomail.
type SMTPProvider struct {
	config *SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPProvider(config *SMTPConfig) *SMTPProvider {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	dialer.SSL = config.UseTLS

	return &SMTPProvider{
		config: config,
		dialer: dialer,
	}
}

func (p *SMTPProvider) SendSubscriptionWelcome(to, name, serviceName string, price float64) error {
	body, err := renderTemplate(welcomeTemplate, templateData{
		Name:        name,
		ServiceName: serviceName,
		Amount:      price,
	})
	if err != nil {
		return fmt.Errorf("failed to render welcome template: %w", err)
	}
	return p.send(to, "Subscription confirmed: "+serviceName, body)
}

func (p *SMTPProvider) SendPaymentReceipt(to, name, serviceName string, amount float64) error {
	body, err := renderTemplate(receiptTemplate, templateData{
		Name:        name,
		ServiceName: serviceName,
		Amount:      amount,
	})
	if err != nil {
		return fmt.Errorf("failed to render receipt template: %w", err)
	}
	return p.send(to, "Payment receipt: "+serviceName, body)
}

func (p *SMTPProvider) Validate() error {
	if p.config.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if p.config.Port <= 0 || p.config.Port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", p.config.Port)
	}
	return nil
}

func (p *SMTPProvider) send(to, subject, body string) error {
	if err := p.Validate(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	return p.dialer.DialAndSend(m)
}
