package users

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a user has no stored profile.
var ErrNotFound = errors.New("user profile not found")

// Profile is the user's self-declared learning context. All of it is
// optional; matching services degrade to defaults without it.
type Profile struct {
	UserID          string    `json:"user_id"`
	Role            string    `json:"role"`
	ExperienceLevel string    `json:"experience_level"` // entry | mid | senior
	Interests       []string  `json:"interests"`
	Skills          []string  `json:"skills"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Repository persists user profiles.
type Repository interface {
	Upsert(ctx context.Context, p Profile) error
	Get(ctx context.Context, userID string) (Profile, error)
}
