package users

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidProfile marks profile writes rejected by validation.
var ErrInvalidProfile = errors.New("invalid profile")

var validLevels = map[string]struct{}{"": {}, "entry": {}, "mid": {}, "senior": {}}

// UseCase manages user profiles.
type UseCase struct {
	repo Repository
	now  func() time.Time
}

func New(repo Repository) *UseCase {
	return &UseCase{repo: repo, now: time.Now}
}

// SetRole stores or replaces the user's declared role and context.
func (uc *UseCase) SetRole(ctx context.Context, p Profile) (Profile, error) {
	if p.UserID == "" {
		return Profile{}, fmt.Errorf("%w: user_id is required", ErrInvalidProfile)
	}
	if p.Role == "" {
		return Profile{}, fmt.Errorf("%w: role is required", ErrInvalidProfile)
	}
	if _, ok := validLevels[p.ExperienceLevel]; !ok {
		return Profile{}, fmt.Errorf("%w: unknown experience_level %q", ErrInvalidProfile, p.ExperienceLevel)
	}
	if p.Interests == nil {
		p.Interests = []string{}
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	p.UpdatedAt = uc.now().UTC()
	if err := uc.repo.Upsert(ctx, p); err != nil {
		return Profile{}, fmt.Errorf("store profile: %w", err)
	}
	return p, nil
}

// Get returns the stored profile, or ErrNotFound.
func (uc *UseCase) Get(ctx context.Context, userID string) (Profile, error) {
	return uc.repo.Get(ctx, userID)
}
