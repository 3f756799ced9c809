package models

// Transaction is an internal bookkeeping record of a subscription payment,
// not a call to a payment gateway. Amount and CardBrand are copied at
// creation time and never re-read. For a completed transaction CreatedAt is
// overwritten with the instant it was marked complete.
type Transaction struct {
	BaseModel
	SubscriptionID string            `gorm:"type:uuid;not null;index" json:"subscription_id"`
	Amount         float64           `gorm:"not null" json:"amount"`
	Status         TransactionStatus `gorm:"not null;index" json:"status"`
	CardBrand      string            `gorm:"not null" json:"card_brand"`

	// Relations
	Subscription Subscription `gorm:"foreignKey:SubscriptionID" json:"-"`
}
