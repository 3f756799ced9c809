package handlers

// AppHandlers holds every HTTP handler in the application.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	BusinessHandler     *BusinessHandler
	ServiceHandler      *ServiceHandler
	CategoryHandler     *CategoryHandler
	SubscriptionHandler *SubscriptionHandler
	TransactionHandler  *TransactionHandler
}
