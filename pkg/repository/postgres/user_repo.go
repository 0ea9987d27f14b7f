package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rahul370139/train-backend/pkg/users"
)

// UserRepository stores self-declared user profiles.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) (*UserRepository, error) {
	r := &UserRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *UserRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS user_profiles (
	user_id TEXT PRIMARY KEY,
	role TEXT NOT NULL,
	experience_level TEXT NOT NULL,
	interests JSONB NOT NULL,
	skills JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
`)
	return err
}

func (r *UserRepository) Upsert(ctx context.Context, p users.Profile) error {
	interests, err := json.Marshal(p.Interests)
	if err != nil {
		return err
	}
	skills, err := json.Marshal(p.Skills)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO user_profiles (user_id, role, experience_level, interests, skills, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id) DO UPDATE SET
	role = $2, experience_level = $3, interests = $4, skills = $5, updated_at = $6
`, p.UserID, p.Role, p.ExperienceLevel, interests, skills, p.UpdatedAt)
	return err
}

func (r *UserRepository) Get(ctx context.Context, userID string) (users.Profile, error) {
	row := r.pool.QueryRow(ctx, `
SELECT user_id, role, experience_level, interests, skills, updated_at
FROM user_profiles WHERE user_id = $1
`, userID)

	var p users.Profile
	var interests, skills []byte
	var updated time.Time
	if err := row.Scan(&p.UserID, &p.Role, &p.ExperienceLevel, &interests, &skills, &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return users.Profile{}, users.ErrNotFound
		}
		return users.Profile{}, err
	}
	_ = json.Unmarshal(interests, &p.Interests)
	_ = json.Unmarshal(skills, &p.Skills)
	p.UpdatedAt = updated.UTC()
	return p, nil
}
