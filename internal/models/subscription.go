package models

import (
	"time"
)

// Subscription ties a user to a service. One row per (user, service) pair.
// ExpiryDate is stamped once at subscribe time from the service duration;
// DaysTillNextPayment is recomputed on every billing sweep.
type Subscription struct {
	BaseModel
	UserID              string             `gorm:"type:uuid;not null;uniqueIndex:idx_user_service" json:"user_id"`
	ServiceID           string             `gorm:"type:uuid;not null;uniqueIndex:idx_user_service" json:"service_id"`
	SubscriptionDate    time.Time          `gorm:"not null" json:"subscription_date"`
	ExpiryDate          time.Time          `gorm:"not null;index" json:"expiry_date"`
	Status              SubscriptionStatus `gorm:"default:'active';index" json:"status"`
	DaysTillNextPayment int                `json:"days_till_next_payment"`

	// Relations
	User         User          `gorm:"foreignKey:UserID" json:"-"`
	Service      Service       `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Transactions []Transaction `gorm:"foreignKey:SubscriptionID;constraint:OnDelete:CASCADE" json:"-"`
}
