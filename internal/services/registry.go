package services

import (
	"subtrack_backend/internal/billing"
	"subtrack_backend/internal/email"
)

// ServiceContainer holds every application service. Clock is the instance the
// subscription service was built with, so handlers and tests share its time.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	BusinessService     BusinessService
	CatalogService      CatalogService
	CategoryService     CategoryService
	CardService         CardService
	SubscriptionService SubscriptionService
	VoteService         VoteService
	EmailService        email.Provider
	Clock               billing.Clock
}
