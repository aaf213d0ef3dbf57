package auth

// UserResponse represents user information in responses
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthResponse wraps the user for register and login responses
type AuthResponse struct {
	Message string        `json:"message"`
	User    *UserResponse `json:"user"`
}

// MeResponse reports the current principal; User is null when no valid
// session is attached to the request.
type MeResponse struct {
	User *UserResponse `json:"user"`
}
