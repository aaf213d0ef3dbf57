package auth

// RegisterRequest represents the request to create an account
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=80"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=1"`
}

// LoginRequest represents the request to authenticate
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
