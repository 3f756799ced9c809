package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextPaymentCountdown(t *testing.T) {
	e := NewEngine()
	subscribed := date(2024, time.January, 1)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"at subscribe time", subscribed, 30},
		{"one day in", date(2024, time.January, 2), 29},
		{"five days before first boundary", date(2024, time.January, 26), 5},
		{"exactly at first boundary", date(2024, time.January, 31), 0},
		{"one day past first boundary", date(2024, time.February, 1), 29},
		{"five days before second boundary", date(2024, time.February, 25), 5},
		{"exactly at second boundary", date(2024, time.March, 1), 0},
		{"far in the future", date(2024, time.December, 26), 0},
		{"mid-day now truncates to whole days", time.Date(2024, time.January, 26, 13, 45, 0, 0, time.UTC), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.NextPaymentCountdown(subscribed, tt.now))
		})
	}
}

func TestNextPaymentCountdown_NeverNegative(t *testing.T) {
	e := NewEngine()
	subscribed := date(2023, time.June, 15)

	now := subscribed
	for i := 0; i < 400; i++ {
		got := e.NextPaymentCountdown(subscribed, now)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, e.CycleDays)
		now = now.Add(17 * time.Hour)
	}
}

func TestExpiryDate(t *testing.T) {
	subscribed := date(2024, time.January, 1)

	assert.Equal(t, date(2024, time.February, 1), ExpiryDate(subscribed, 1))
	assert.Equal(t, date(2024, time.July, 1), ExpiryDate(subscribed, 6))
	assert.Equal(t, date(2025, time.January, 1), ExpiryDate(subscribed, 12))
}

func TestDecide_PendingCreatedFiveDaysBeforeBoundary(t *testing.T) {
	e := NewEngine()

	d := e.Decide(Input{
		SubscribedAt: date(2024, time.January, 1),
		ServicePrice: 100.0,
		CardBrand:    "Visa",
		HasPending:   false,
	}, date(2024, time.January, 26))

	assert.Equal(t, 5, d.Countdown)
	assert.True(t, d.CreatePending)
	assert.False(t, d.Complete)
	assert.Equal(t, 100.0, d.Amount)
	assert.Equal(t, "Visa", d.CardBrand)
}

func TestDecide_NoDuplicatePending(t *testing.T) {
	e := NewEngine()

	d := e.Decide(Input{
		SubscribedAt: date(2024, time.January, 1),
		ServicePrice: 100.0,
		CardBrand:    "Visa",
		HasPending:   true,
	}, date(2024, time.January, 26))

	assert.Equal(t, 5, d.Countdown)
	assert.False(t, d.CreatePending, "a second pending transaction must never be opened")
	assert.False(t, d.Complete)
}

func TestDecide_CompleteAtBoundary(t *testing.T) {
	e := NewEngine()

	d := e.Decide(Input{
		SubscribedAt: date(2024, time.January, 1),
		ServicePrice: 100.0,
		CardBrand:    "Visa",
		HasPending:   true,
	}, date(2024, time.January, 31))

	assert.Equal(t, 0, d.Countdown)
	assert.True(t, d.Complete)
	assert.False(t, d.CreatePending)
}

func TestDecide_BoundaryWithoutPendingDoesNothing(t *testing.T) {
	e := NewEngine()

	d := e.Decide(Input{
		SubscribedAt: date(2024, time.January, 1),
		ServicePrice: 100.0,
		CardBrand:    "Visa",
		HasPending:   false,
	}, date(2024, time.January, 31))

	assert.Equal(t, 0, d.Countdown)
	assert.False(t, d.Complete)
	assert.False(t, d.CreatePending)
}

func TestDecide_MissingCardSkipsPending(t *testing.T) {
	e := NewEngine()

	d := e.Decide(Input{
		SubscribedAt: date(2024, time.January, 1),
		ServicePrice: 100.0,
		CardBrand:    "",
		HasPending:   false,
	}, date(2024, time.January, 26))

	assert.Equal(t, 5, d.Countdown)
	assert.False(t, d.CreatePending)
	assert.True(t, d.SkippedNoCard)
}

func TestDecide_QuietDay(t *testing.T) {
	e := NewEngine()

	d := e.Decide(Input{
		SubscribedAt: date(2024, time.January, 1),
		ServicePrice: 100.0,
		CardBrand:    "Visa",
		HasPending:   false,
	}, date(2024, time.January, 10))

	assert.Equal(t, 21, d.Countdown)
	assert.False(t, d.CreatePending)
	assert.False(t, d.Complete)
	assert.False(t, d.SkippedNoCard)
}

func TestFixedClockReportsUTC(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	assert.NoError(t, err)

	local := time.Date(2024, time.January, 26, 0, 0, 0, 0, loc)
	c := FixedClock{Instant: local}

	assert.Equal(t, time.UTC, c.Now().Location())
	assert.True(t, c.Now().Equal(local))
}
