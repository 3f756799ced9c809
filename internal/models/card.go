package models

import (
	"gorm.io/datatypes"
)

// Card is the single payment card on file per user. Only the last four
// digits are stored; the brand is stamped onto transactions at creation.
type Card struct {
	BaseModel
	UserID   string         `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	LastFour string         `gorm:"not null" json:"last_four"`
	Expiry   string         `gorm:"not null" json:"expiry"` // MM/YY
	Brand    string         `gorm:"not null" json:"brand"`
	Metadata datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"` // issuer extras, tokenization refs
}
