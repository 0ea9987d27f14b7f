package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rahul370139/train-backend/pkg/lesson"
)

// ProgressRepository stores lesson completions, the activity feed and
// achievements.
type ProgressRepository struct {
	pool *pgxpool.Pool
}

func NewProgressRepository(pool *pgxpool.Pool) (*ProgressRepository, error) {
	r := &ProgressRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ProgressRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS lesson_completions (
	user_id TEXT NOT NULL,
	lesson_id UUID NOT NULL,
	progress INT NOT NULL,
	completed_at TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (user_id, lesson_id)
);
CREATE TABLE IF NOT EXISTS activity_log (
	id BIGSERIAL PRIMARY KEY,
	user_id TEXT NOT NULL,
	kind TEXT NOT NULL,
	description TEXT NOT NULL,
	occurred_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS activity_log_user_idx ON activity_log(user_id, occurred_at DESC);
CREATE TABLE IF NOT EXISTS achievements (
	user_id TEXT NOT NULL,
	achievement_id TEXT NOT NULL,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	earned_at TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (user_id, achievement_id)
);
`)
	return err
}

func (r *ProgressRepository) UpsertCompletion(ctx context.Context, c lesson.Completion) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO lesson_completions (user_id, lesson_id, progress, completed_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id, lesson_id) DO UPDATE SET progress = $3, completed_at = $4
`, c.UserID, c.LessonID, c.Progress, c.CompletedAt)
	return err
}

func (r *ProgressRepository) CompletionsByUser(ctx context.Context, userID string) ([]lesson.Completion, error) {
	rows, err := r.pool.Query(ctx, `
SELECT user_id, lesson_id, progress, completed_at
FROM lesson_completions WHERE user_id = $1
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []lesson.Completion
	for rows.Next() {
		var c lesson.Completion
		var at time.Time
		if err := rows.Scan(&c.UserID, &c.LessonID, &c.Progress, &at); err != nil {
			return nil, err
		}
		c.CompletedAt = at.UTC()
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ProgressRepository) AppendActivity(ctx context.Context, a lesson.Activity) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO activity_log (user_id, kind, description, occurred_at)
VALUES ($1, $2, $3, $4)
`, a.UserID, a.Kind, a.Description, a.OccurredAt)
	return err
}

func (r *ProgressRepository) RecentActivity(ctx context.Context, userID string, limit int) ([]lesson.Activity, error) {
	rows, err := r.pool.Query(ctx, `
SELECT user_id, kind, description, occurred_at
FROM activity_log WHERE user_id = $1
ORDER BY occurred_at DESC
LIMIT $2
`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []lesson.Activity
	for rows.Next() {
		var a lesson.Activity
		var at time.Time
		if err := rows.Scan(&a.UserID, &a.Kind, &a.Description, &at); err != nil {
			return nil, err
		}
		a.OccurredAt = at.UTC()
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *ProgressRepository) AwardAchievement(ctx context.Context, userID string, a lesson.Achievement) error {
	// Append-only: a repeat award leaves the original row untouched.
	_, err := r.pool.Exec(ctx, `
INSERT INTO achievements (user_id, achievement_id, title, description, earned_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (user_id, achievement_id) DO NOTHING
`, userID, a.ID, a.Title, a.Description, a.EarnedAt)
	return err
}

func (r *ProgressRepository) AchievementsByUser(ctx context.Context, userID string) ([]lesson.Achievement, error) {
	rows, err := r.pool.Query(ctx, `
SELECT achievement_id, title, description, earned_at
FROM achievements WHERE user_id = $1
ORDER BY earned_at ASC
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []lesson.Achievement
	for rows.Next() {
		var a lesson.Achievement
		var at time.Time
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &at); err != nil {
			return nil, err
		}
		a.EarnedAt = at.UTC()
		out = append(out, a)
	}
	return out, rows.Err()
}
