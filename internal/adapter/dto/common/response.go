package common

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse represents a simple confirmation response
type MessageResponse struct {
	Message string `json:"message"`
}
