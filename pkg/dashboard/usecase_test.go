package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahul370139/train-backend/pkg/career"
	"github.com/rahul370139/train-backend/pkg/lesson"
	"github.com/rahul370139/train-backend/pkg/users"
)

type lessonRepo struct {
	completions  []lesson.Completion
	activity     []lesson.Activity
	achievements []lesson.Achievement
	failReads    bool
}

var errDown = errors.New("db down")

func (r *lessonRepo) UpsertCompletion(_ context.Context, c lesson.Completion) error {
	r.completions = append(r.completions, c)
	return nil
}

func (r *lessonRepo) CompletionsByUser(context.Context, string) ([]lesson.Completion, error) {
	if r.failReads {
		return nil, errDown
	}
	return r.completions, nil
}

func (r *lessonRepo) AppendActivity(_ context.Context, a lesson.Activity) error {
	r.activity = append(r.activity, a)
	return nil
}

func (r *lessonRepo) RecentActivity(_ context.Context, _ string, limit int) ([]lesson.Activity, error) {
	if r.failReads {
		return nil, errDown
	}
	out := r.activity
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (r *lessonRepo) AwardAchievement(_ context.Context, _ string, a lesson.Achievement) error {
	r.achievements = append(r.achievements, a)
	return nil
}

func (r *lessonRepo) AchievementsByUser(context.Context, string) ([]lesson.Achievement, error) {
	if r.failReads {
		return nil, errDown
	}
	return r.achievements, nil
}

type userRepo struct {
	profiles map[string]users.Profile
}

func (r *userRepo) Upsert(_ context.Context, p users.Profile) error {
	if r.profiles == nil {
		r.profiles = map[string]users.Profile{}
	}
	r.profiles[p.UserID] = p
	return nil
}

func (r *userRepo) Get(_ context.Context, userID string) (users.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return users.Profile{}, users.ErrNotFound
	}
	return p, nil
}

func newUseCase(lr *lessonRepo, ur *userRepo) *UseCase {
	return New(lesson.New(lr, nil), users.New(ur), career.NewService())
}

func TestOverviewAggregates(t *testing.T) {
	lr := &lessonRepo{}
	ur := &userRepo{}
	uc := newUseCase(lr, ur)

	_, err := users.New(ur).SetRole(context.Background(), users.Profile{
		UserID: "u1", Role: "Frontend Developer", ExperienceLevel: "entry",
		Interests: []string{"design"}, Skills: []string{"javascript"},
	})
	require.NoError(t, err)

	_, err = lesson.New(lr, nil).Complete(context.Background(), "u1", uuid.New(), 100)
	require.NoError(t, err)

	got := uc.Overview(context.Background(), "u1")

	assert.False(t, got.DemoData)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, 1, got.Progress.TotalLessons)
	assert.Equal(t, 1, got.Progress.CompletedLessons)
	require.Len(t, got.RecentActivity, 1)
	require.Len(t, got.Achievements, 1)
	assert.Equal(t, lesson.AchievementFirstLesson, got.Achievements[0].ID)
	assert.NotEmpty(t, got.Recommendations)
	assert.NotEmpty(t, got.CareerPaths)
}

func TestOverviewDegradesToDemoData(t *testing.T) {
	uc := newUseCase(&lessonRepo{failReads: true}, &userRepo{})

	got := uc.Overview(context.Background(), "u1")

	assert.True(t, got.DemoData)
	assert.Equal(t, "u1", got.UserID)
	assert.NotEmpty(t, got.RecentActivity)
	assert.NotEmpty(t, got.Achievements)
	assert.NotEmpty(t, got.Recommendations)
}

func TestOverviewAnonymousProfile(t *testing.T) {
	uc := newUseCase(&lessonRepo{}, &userRepo{})

	got := uc.Overview(context.Background(), "ghost")

	assert.False(t, got.DemoData)
	assert.Equal(t, 0, got.Progress.TotalLessons)
	assert.Empty(t, got.RecentActivity)
	assert.NotEmpty(t, got.Recommendations)
}

func TestOverviewActivityCap(t *testing.T) {
	lr := &lessonRepo{}
	uc := newUseCase(lr, &userRepo{})
	for i := 0; i < 30; i++ {
		lr.activity = append(lr.activity, lesson.Activity{
			UserID: "u1", Kind: "lesson_progress", OccurredAt: time.Now(),
		})
	}

	got := uc.Overview(context.Background(), "u1")
	assert.Len(t, got.RecentActivity, maxRecentActivity)
}
