package entities

import "errors"

// Domain errors
var (
	// User errors
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidPassword = errors.New("invalid password")
	ErrEmailTaken      = errors.New("email already registered")
	ErrUsernameTaken   = errors.New("username already taken")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")

	// Aggregate errors
	ErrMeetingNotFound    = errors.New("meeting not found")
	ErrTopicNotFound      = errors.New("topic not found")
	ErrActionItemNotFound = errors.New("action item not found")

	// Generic errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)
