package user

import (
	"context"

	apperrors "github.com/quickmom/quickmom/errors"
	"github.com/quickmom/quickmom/internal/domain/entities"
	"github.com/quickmom/quickmom/internal/domain/repositories"
	"github.com/quickmom/quickmom/internal/usecase/auth"
)

const (
	searchLimit  = 10
	browseLimit  = 20
	seedPassword = "password"
)

// Service handles user lookup and development seeding.
type Service struct {
	userRepo repositories.UserRepository
}

// NewService creates a new user service
func NewService(userRepo repositories.UserRepository) *Service {
	return &Service{userRepo: userRepo}
}

// Search finds users whose username contains the query, case
// insensitively. An empty query returns a small browse list instead of
// nothing so attendee pickers have something to show.
func (s *Service) Search(ctx context.Context, query string) ([]*entities.User, error) {
	var (
		users []*entities.User
		err   error
	)
	if query == "" {
		users, err = s.userRepo.List(ctx, browseLimit)
	} else {
		users, err = s.userRepo.SearchByUsername(ctx, query, searchLimit)
	}
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	return users, nil
}

// seedUsers are the fixture accounts created by Seed. They all share
// the same well-known password.
var seedUsers = []struct {
	Username string
	Email    string
}{
	{"alice", "alice@example.com"},
	{"bob", "bob@example.com"},
	{"charlie", "charlie@example.com"},
	{"david", "david@example.com"},
}

// Seed populates the fixture accounts. It refuses to run twice: any
// database holding more than one user is considered already seeded.
func (s *Service) Seed(ctx context.Context) (string, error) {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return "", apperrors.ErrDBQueryFailed(err)
	}
	if count > 1 {
		return "Database already seeded", nil
	}

	hash, err := auth.HashPassword(seedPassword)
	if err != nil {
		return "", apperrors.ErrInternal(err)
	}

	for _, su := range seedUsers {
		u := entities.NewUser(su.Username, su.Email, hash)
		if err := s.userRepo.Create(ctx, u); err != nil {
			return "", apperrors.ErrDBQueryFailed(err)
		}
	}
	return "Database seeded successfully", nil
}
