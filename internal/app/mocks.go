package app

import (
	"subtrack_backend/internal/logger"
)

// MockEmailProvider logs instead of sending. Used when SMTP is not
// configured.
type MockEmailProvider struct{}

func (m *MockEmailProvider) SendSubscriptionWelcome(to, name, serviceName string, price float64) error {
	logger.Info("MOCK email: subscription welcome", "to", to, "service", serviceName, "price", price)
	return nil
}

func (m *MockEmailProvider) SendPaymentReceipt(to, name, serviceName string, amount float64) error {
	logger.Info("MOCK email: payment receipt", "to", to, "service", serviceName, "amount", amount)
	return nil
}

func (m *MockEmailProvider) Validate() error {
	return nil
}
