// Package store persists household profiles.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/lifebridge/lifebridge/internal/domain"
)

// ErrNotFound is returned when a requested profile does not exist
var ErrNotFound = errors.New("profile not found")

// StoredProfile is a saved household profile
type StoredProfile struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Profile   domain.UserProfile `json:"profile"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// ProfileStore is the persistence interface for household profiles
type ProfileStore interface {
	// Save creates the profile when ID is empty (assigning one) and
	// replaces it otherwise. The profile is validated first.
	Save(ctx context.Context, p StoredProfile) (StoredProfile, error)
	Get(ctx context.Context, id string) (StoredProfile, error)
	// List returns profiles ordered by creation time, oldest first.
	List(ctx context.Context) ([]StoredProfile, error)
	Delete(ctx context.Context, id string) error
	Close() error
}
