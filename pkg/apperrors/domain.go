package apperrors

import (
	"net/http"
)

// Factories and predefined errors for the business domains: auth, catalog,
// cards, subscriptions, transactions.

// ErrNotFound converts a repository not-found error into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a repository duplicate error into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the generic conflict factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation builds a 400 for operations the current state forbids.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Auth & accounts ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

var ErrBusinessNotFound = New(
	CodeNotFound,
	"business",
	"Business not found",
	http.StatusNotFound,
)

// --- Catalog ---

var ErrServiceNotFound = New(
	CodeNotFound,
	"catalog",
	"Service not found",
	http.StatusNotFound,
)

var ErrServiceInactive = New(
	CodeInvalidStatus,
	"catalog",
	"Service is not open for subscriptions",
	http.StatusConflict,
)

var ErrCategoryNotFound = New(
	CodeNotFound,
	"catalog",
	"Category not found",
	http.StatusNotFound,
)

var ErrNotServiceOwner = New(
	CodeForbidden,
	"catalog",
	"You do not own this service",
	http.StatusForbidden,
)

// --- Cards ---

var ErrCardNotFound = New(
	CodeNotFound,
	"card",
	"No payment card on file",
	http.StatusNotFound,
)

var ErrCardAlreadyExists = New(
	CodeAlreadyExists,
	"card",
	"A payment card is already on file for this user",
	http.StatusConflict,
)

// ErrPaymentMethodMissing rejects a subscribe attempt when the user has no
// card on file. Nothing is written before this check.
var ErrPaymentMethodMissing = New(
	CodeInvalidOperation,
	"subscription",
	"A payment card is required before subscribing",
	http.StatusBadRequest,
)

// --- Subscriptions & transactions ---

var ErrDuplicateSubscription = New(
	CodeAlreadyExists,
	"subscription",
	"Subscription already exists",
	http.StatusConflict,
)

var ErrSubscriptionNotFound = New(
	CodeNotFound,
	"subscription",
	"Subscription not found",
	http.StatusNotFound,
)

// ErrNoSubscriptions keeps the original user-facing 404 for an empty list.
// The service layer treats an empty list as success; only the HTTP edge maps
// it to this error.
var ErrNoSubscriptions = New(
	CodeNotFound,
	"subscription",
	"You don't have any subscriptions",
	http.StatusNotFound,
)

var ErrNoTransactions = New(
	CodeNotFound,
	"transaction",
	"No transactions found",
	http.StatusNotFound,
)

// ErrNothingToClean mirrors the original cleanup contract: deleting zero
// expired subscriptions is reported as a 404 at the admin endpoint.
var ErrNothingToClean = New(
	CodeNotFound,
	"subscription",
	"No expired subscriptions to clean up",
	http.StatusNotFound,
)

// --- Votes ---

var ErrAlreadyVoted = New(
	CodeAlreadyExists,
	"vote",
	"You have already voted for this service",
	http.StatusConflict,
)

var ErrVoteNotFound = New(
	CodeNotFound,
	"vote",
	"Vote does not exist",
	http.StatusNotFound,
)
