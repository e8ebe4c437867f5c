// Package services contains the application services of the clinic manager.
// This file defines authentication: the check that a username/password pair
// identifies a stored account.
package services

import (
	"context"
	"errors"

	"github.com/dkorsakov/clinickeeper/internal/common"
	"github.com/dkorsakov/clinickeeper/internal/models"
	"github.com/dkorsakov/clinickeeper/internal/repositories/users"
)

// AuthService answers "is this username/password pair valid". It is
// stateless: every call goes through the repository.
type AuthService struct {
	repo users.Repository
}

func NewAuthService(repo users.Repository) *AuthService {
	return &AuthService{repo: repo}
}

// Authenticate looks the username up and verifies the password against the
// stored credential. Unknown username and wrong password both return
// common.ErrInvalidCredentials, so a caller cannot probe which usernames
// exist. Storage failures are propagated unchanged.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.AppUser, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.Matches(password) {
		return nil, common.ErrInvalidCredentials
	}
	return user, nil
}
