package billing

import (
	"time"
)

const (
	// DefaultCycleDays is the payment cadence: payments recur every 30 days
	// from the original subscription date.
	DefaultCycleDays = 30

	// DefaultPendingLead is how many days before the next payment a pending
	// transaction is opened.
	DefaultPendingLead = 5
)

// Engine holds the billing cadence and makes pure, side-effect-free
// decisions. The caller resolves the subscription aggregate (service price,
// card brand, pending transaction) up front; the engine never fetches.
type Engine struct {
	CycleDays   int
	PendingLead int
}

// NewEngine builds an engine with the default 30/5 cadence.
func NewEngine() *Engine {
	return &Engine{
		CycleDays:   DefaultCycleDays,
		PendingLead: DefaultPendingLead,
	}
}

// Input is the already-resolved view of one subscription the engine decides
// on. CardBrand is empty when the user has no card on file.
type Input struct {
	SubscribedAt time.Time
	ServicePrice float64
	CardBrand    string
	HasPending   bool
}

// Decision is what the caller must persist for one subscription.
type Decision struct {
	Countdown int

	// CreatePending: open a pending transaction with Amount and CardBrand.
	CreatePending bool
	Amount        float64
	CardBrand     string

	// Complete: flip the existing pending transaction to complete, stamping
	// the current instant as its creation time.
	Complete bool

	// SkippedNoCard reports that a pending transaction was due but could not
	// be stamped because no card is on file.
	SkippedNoCard bool
}

// NextPaymentCountdown returns whole days until the soonest cycle boundary
// that is not in the past. Boundaries are subscribedAt + k*cycle (k >= 1);
// the result is clamped to 0 when a boundary is exactly now.
func (e *Engine) NextPaymentCountdown(subscribedAt, now time.Time) int {
	next := subscribedAt.AddDate(0, 0, e.CycleDays)
	for next.Before(now) {
		next = next.AddDate(0, 0, e.CycleDays)
	}
	days := int(next.Sub(now) / (24 * time.Hour))
	if days < 0 {
		days = 0
	}
	return days
}

// ExpiryDate returns the instant a subscription lapses: the subscription
// date plus the service duration in months, as the duration was at subscribe
// time.
func ExpiryDate(subscribedAt time.Time, durationMonths int) time.Time {
	return subscribedAt.AddDate(0, durationMonths, 0)
}

// Decide recomputes the countdown and determines the transaction side effect
// for one subscription. Evaluated once per subscription per sweep; callers
// guarantee the subscription is active.
func (e *Engine) Decide(in Input, now time.Time) Decision {
	d := Decision{
		Countdown: e.NextPaymentCountdown(in.SubscribedAt, now),
	}

	switch {
	case d.Countdown == e.PendingLead && !in.HasPending:
		if in.CardBrand == "" {
			// A transaction without a card brand cannot be stamped; skip and
			// let the caller log the gap.
			d.SkippedNoCard = true
			return d
		}
		d.CreatePending = true
		d.Amount = in.ServicePrice
		d.CardBrand = in.CardBrand
	case d.Countdown == 0 && in.HasPending:
		d.Complete = true
	}

	return d
}
