package email

// Provider sends the platform's transactional email. Failures are reported
// to the caller; billing code logs and carries on.
type Provider interface {
	// SendSubscriptionWelcome confirms a new subscription.
	SendSubscriptionWelcome(to, name, serviceName string, price float64) error

	// SendPaymentReceipt confirms a completed payment transaction.
	SendPaymentReceipt(to, name, serviceName string, amount float64) error

	// Validate checks the provider configuration.
	Validate() error
}
