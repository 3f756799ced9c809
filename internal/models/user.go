package models

type User struct {
	BaseModel
	Name         string   `gorm:"not null" json:"name"`
	Email        string   `gorm:"not null;uniqueIndex" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"default:'user'" json:"role"`
	ProfileImage string   `json:"profile_image,omitempty"`

	// Relations
	Card          *Card          `gorm:"foreignKey:UserID" json:"card,omitempty"`
	Subscriptions []Subscription `gorm:"foreignKey:UserID" json:"-"`
}
