package models

import (
	"time"
)

// Vote is a user's endorsement of a service. Composite primary key, no
// surrogate id.
type Vote struct {
	UserID    string    `gorm:"type:uuid;primaryKey" json:"user_id"`
	ServiceID string    `gorm:"type:uuid;primaryKey" json:"service_id"`
	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`

	// Relations
	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Service Service `gorm:"foreignKey:ServiceID" json:"-"`
}
