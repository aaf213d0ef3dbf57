package presenter

import (
	authDTO "github.com/quickmom/quickmom/internal/adapter/dto/auth"
	"github.com/quickmom/quickmom/internal/domain/entities"
)

// ToUserResponse converts a User entity to UserResponse DTO
func ToUserResponse(u *entities.User) *authDTO.UserResponse {
	if u == nil {
		return nil
	}
	return &authDTO.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// ToUserResponses converts a slice of users, never returning nil so the
// JSON encodes as an empty array.
func ToUserResponses(users []*entities.User) []*authDTO.UserResponse {
	out := make([]*authDTO.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out
}
