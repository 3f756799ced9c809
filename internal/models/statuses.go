package models

type UserRole string
type SubscriptionStatus string
type TransactionStatus string
type ServiceStatus string

const (
	UserRoleUser     UserRole = "user"
	UserRoleBusiness UserRole = "business"
	UserRoleAdmin    UserRole = "admin"

	SubscriptionStatusActive  SubscriptionStatus = "active"
	SubscriptionStatusExpired SubscriptionStatus = "expired"

	TransactionStatusPending  TransactionStatus = "pending"
	TransactionStatusComplete TransactionStatus = "complete"

	ServiceStatusActive   ServiceStatus = "active"
	ServiceStatusInactive ServiceStatus = "inactive"
)
