package models

type Business struct {
	BaseModel
	Name            string `gorm:"not null" json:"name"`
	Description     string `json:"description,omitempty"`
	Email           string `gorm:"not null;uniqueIndex" json:"email"`
	PasswordHash    string `gorm:"not null" json:"-"`
	Phone           string `gorm:"not null" json:"phone"`
	Country         string `json:"country,omitempty"`
	City            string `json:"city,omitempty"`
	Address         string `json:"address,omitempty"`
	BankAccount     string `json:"-"`
	BankAccountName string `json:"-"`
	BankName        string `json:"-"`
	ProfileImage    string `json:"profile_image,omitempty"`

	// Relations
	Services []Service `gorm:"foreignKey:BusinessID" json:"-"`
}
