package models

// Service is a subscribable offering published by a business.
// DurationMonths is copied onto subscriptions at subscribe time; changing it
// afterwards never retroacts on existing subscriptions.
type Service struct {
	BaseModel
	Name           string        `gorm:"not null" json:"name"`
	Description    string        `gorm:"not null" json:"description"`
	Tier           int           `json:"tier,omitempty"`
	Price          float64       `gorm:"not null" json:"price"`
	DurationMonths int           `gorm:"not null" json:"duration_months"`
	Status         ServiceStatus `gorm:"default:'active'" json:"status"`
	ServiceImage   string        `json:"service_image,omitempty"`
	BusinessID     string        `gorm:"type:uuid;not null;index" json:"business_id"`
	CategoryID     *string       `gorm:"type:uuid;index" json:"category_id,omitempty"`

	// Relations
	Business Business  `gorm:"foreignKey:BusinessID" json:"business,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
