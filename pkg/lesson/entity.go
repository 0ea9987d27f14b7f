package lesson

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidProgress is returned for completion percentages outside 0..100.
var ErrInvalidProgress = errors.New("progress must be between 0 and 100")

// Completion is a user's progress on one lesson. Progress is a percentage;
// 100 counts as completed.
type Completion struct {
	UserID      string    `json:"user_id"`
	LessonID    uuid.UUID `json:"lesson_id"`
	Progress    int       `json:"progress"`
	CompletedAt time.Time `json:"completed_at"`
}

// Activity is one entry in the user's activity feed.
type Activity struct {
	UserID      string    `json:"-"`
	Kind        string    `json:"kind"` // lesson_completed | lesson_progress
	Description string    `json:"description"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Achievement ids awarded by completions.
const (
	AchievementFirstLesson = "first_lesson"
	AchievementWeekStreak  = "week_streak"
	AchievementTenLessons  = "ten_lessons"
)

// Achievement is an append-only badge. Awarding the same id twice is a no-op.
type Achievement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EarnedAt    time.Time `json:"earned_at"`
}

// ProgressSnapshot summarizes a user's learning so far.
type ProgressSnapshot struct {
	TotalLessons      int     `json:"total_lessons"`
	CompletedLessons  int     `json:"completed_lessons"`
	AverageProgress   float64 `json:"average_progress"`
	CurrentStreakDays int     `json:"current_streak_days"`
}

// Recommendation is one suggested lesson topic.
type Recommendation struct {
	Topic  string `json:"topic"`
	Reason string `json:"reason"`
}

// Repository persists completions, the activity feed and achievements.
type Repository interface {
	UpsertCompletion(ctx context.Context, c Completion) error
	CompletionsByUser(ctx context.Context, userID string) ([]Completion, error)

	AppendActivity(ctx context.Context, a Activity) error
	RecentActivity(ctx context.Context, userID string, limit int) ([]Activity, error)

	AwardAchievement(ctx context.Context, userID string, a Achievement) error
	AchievementsByUser(ctx context.Context, userID string) ([]Achievement, error)
}
