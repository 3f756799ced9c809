package dto

type UpdateUserRequest struct {
	Name *string `json:"name" validate:"omitempty,min=2,max=100"`
}

type UpdateBusinessRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Phone       *string `json:"phone" validate:"omitempty,min=5,max=20"`
	Country     *string `json:"country" validate:"omitempty,max=100"`
	City        *string `json:"city" validate:"omitempty,max=100"`
	Address     *string `json:"address" validate:"omitempty,max=300"`
}

type AddCardRequest struct {
	// Only the last four digits are persisted; full numbers never reach
	// storage.
	Number string `json:"number" binding:"required" validate:"required,min=12,max=23"`
	Expiry string `json:"expiry" binding:"required" validate:"required,card_expiry"`
	Brand  string `json:"brand" binding:"required" validate:"required,min=2,max=30"`
}
