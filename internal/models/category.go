package models

type Category struct {
	BaseModel
	Name          string `gorm:"not null;uniqueIndex" json:"name"`
	Description   string `json:"description,omitempty"`
	Ranking       int    `json:"ranking,omitempty"`
	CategoryImage string `json:"category_image,omitempty"`

	// Relations
	Services []Service `gorm:"foreignKey:CategoryID" json:"-"`
}
