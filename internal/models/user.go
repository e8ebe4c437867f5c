// Package models defines the domain values of the clinic manager: the
// account entity used for authentication and the sample ward records shown
// by the console.
package models

import (
	"github.com/google/uuid"

	"github.com/dkorsakov/clinickeeper/internal/cryptox"
)

// newID is a test seam for account id generation.
// In tests you can replace it with a stub returning fixed ids.
var newID = uuid.NewString

// AppUser is one clinic account. Values are immutable: a password change
// produces a new value via WithNewPassword, it never mutates fields in
// place. The id is assigned once at creation and is never reused.
type AppUser struct {
	id           string
	username     string
	role         string
	passwordHash string
	salt         []byte
}

// NewUserWithPassword builds an account with a fresh salt, a hash of the
// given plaintext and a newly assigned id. Username and role formats are
// not validated here; that is the caller's concern.
func NewUserWithPassword(username, role, plaintext string) (*AppUser, error) {
	salt, err := cryptox.NewSalt()
	if err != nil {
		return nil, err
	}
	return &AppUser{
		id:           newID(),
		username:     username,
		role:         role,
		passwordHash: cryptox.HashPassword(plaintext, salt),
		salt:         salt,
	}, nil
}

// UserFromStorage rebuilds an account from persisted fields without any
// hashing. The caller guarantees salt is exactly the salt that produced
// passwordHash.
func UserFromStorage(id, username, role, passwordHash string, salt []byte) *AppUser {
	return &AppUser{
		id:           id,
		username:     username,
		role:         role,
		passwordHash: passwordHash,
		salt:         append([]byte(nil), salt...),
	}
}

// Matches reports whether the candidate plaintext hashes to the stored hash
// under the account's own salt. Side-effect free.
func (u *AppUser) Matches(candidate string) bool {
	return cryptox.HashPassword(candidate, u.salt) == u.passwordHash
}

// WithNewPassword returns a copy of the account carrying a freshly
// generated salt and the hash of the new plaintext. Id, username and role
// are kept; the receiver is left untouched.
func (u *AppUser) WithNewPassword(plaintext string) (*AppUser, error) {
	salt, err := cryptox.NewSalt()
	if err != nil {
		return nil, err
	}
	return &AppUser{
		id:           u.id,
		username:     u.username,
		role:         u.role,
		passwordHash: cryptox.HashPassword(plaintext, salt),
		salt:         salt,
	}, nil
}

func (u *AppUser) ID() string           { return u.id }
func (u *AppUser) Username() string     { return u.username }
func (u *AppUser) Role() string         { return u.role }
func (u *AppUser) PasswordHash() string { return u.passwordHash }

// Salt returns a copy of the stored salt so holders cannot corrupt the
// account's internal state.
func (u *AppUser) Salt() []byte {
	return append([]byte(nil), u.salt...)
}
