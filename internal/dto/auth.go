package dto

type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required" validate:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required,min=8"`
}

type RegisterBusinessRequest struct {
	Name            string `json:"name" binding:"required" validate:"required,min=2,max=100"`
	Email           string `json:"email" binding:"required" validate:"required,email"`
	Password        string `json:"password" binding:"required" validate:"required,min=8"`
	Phone           string `json:"phone" binding:"required" validate:"required,min=5,max=20"`
	Description     string `json:"description" validate:"max=2000"`
	Country         string `json:"country" validate:"max=100"`
	City            string `json:"city" validate:"max=100"`
	Address         string `json:"address" validate:"max=300"`
	BankAccount     string `json:"bank_account" validate:"max=40"`
	BankAccountName string `json:"bank_account_name" validate:"max=100"`
	BankName        string `json:"bank_name" validate:"max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	Role        string      `json:"role"`
	Account     interface{} `json:"account"`
}
