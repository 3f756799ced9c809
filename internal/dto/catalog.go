package dto

type CreateServiceRequest struct {
	Name           string  `json:"name" binding:"required" validate:"required,min=2,max=150"`
	Description    string  `json:"description" binding:"required" validate:"required,max=2000"`
	Price          float64 `json:"price" binding:"required" validate:"required,gt=0"`
	DurationMonths int     `json:"duration_months" binding:"required" validate:"required,min=1,max=120"`
	Tier           int     `json:"tier" validate:"min=0,max=10"`
	CategoryID     string  `json:"category_id" validate:"omitempty,uuid"`
}

type UpdateServiceRequest struct {
	Name           *string  `json:"name" validate:"omitempty,min=2,max=150"`
	Description    *string  `json:"description" validate:"omitempty,max=2000"`
	Price          *float64 `json:"price" validate:"omitempty,gt=0"`
	DurationMonths *int     `json:"duration_months" validate:"omitempty,min=1,max=120"`
	Tier           *int     `json:"tier" validate:"omitempty,min=0,max=10"`
	Status         *string  `json:"status" validate:"omitempty,oneof=active inactive"`
	CategoryID     *string  `json:"category_id" validate:"omitempty,uuid"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"max=1000"`
	Ranking     int    `json:"ranking" validate:"min=0"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Ranking     *int    `json:"ranking" validate:"omitempty,min=0"`
}
