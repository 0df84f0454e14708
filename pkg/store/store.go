package store

import (
	"time"

	"contentforge/pkg/domain"
)

// Store defines persistence operations for users, profiles, and
// generation records.
type Store interface {
	// users
	SaveUser(domain.User) error
	HasUserEmail(email string) (bool, error)
	GetUserByEmail(email string) (domain.User, bool, error)
	GetUserByID(id string) (domain.User, bool, error)

	// profiles
	SaveProfile(domain.Profile) error
	GetProfile(userID string) (domain.Profile, bool, error)

	// generations
	InsertGeneration(domain.Generation) (domain.Generation, error)
	GetGeneration(id string) (domain.Generation, bool, error)
	ListGenerationsByOwner(ownerID string) ([]domain.Generation, error)
	DeleteGeneration(id string) error
	CountGenerationsSince(ownerID string, since time.Time) (int, error)
}

// SessionStore issues and validates session tokens.
type SessionStore interface {
	NewSession(userID string) (string, error)
	GetUserIDByToken(token string) (string, bool, error)
	DeleteSession(token string) error
}
