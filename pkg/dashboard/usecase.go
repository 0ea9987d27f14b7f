package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/rahul370139/train-backend/pkg/career"
	"github.com/rahul370139/train-backend/pkg/lesson"
	"github.com/rahul370139/train-backend/pkg/users"
)

const maxRecentActivity = 20

// Overview is the aggregated dashboard payload. DemoData marks responses
// assembled from the canned dataset after a persistence failure.
type Overview struct {
	UserID          string                  `json:"user_id"`
	Progress        lesson.ProgressSnapshot `json:"progress"`
	RecentActivity  []lesson.Activity       `json:"recent_activity"`
	Achievements    []lesson.Achievement    `json:"achievements"`
	Recommendations []lesson.Recommendation `json:"recommendations"`
	CareerPaths     []string                `json:"career_paths"`
	DemoData        bool                    `json:"demo_data"`
}

// UseCase assembles the dashboard from the lesson tracker, user profile and
// career matcher. It never fails a read: missing or broken persistence
// degrades to a flagged demo dataset.
type UseCase struct {
	lessons *lesson.UseCase
	profile *users.UseCase
	matcher *career.Service
	now     func() time.Time
}

func New(lessons *lesson.UseCase, profile *users.UseCase, matcher *career.Service) *UseCase {
	return &UseCase{lessons: lessons, profile: profile, matcher: matcher, now: time.Now}
}

// Overview builds the user's dashboard.
func (uc *UseCase) Overview(ctx context.Context, userID string) Overview {
	var role, level string
	var interests, skills []string
	if p, err := uc.profile.Get(ctx, userID); err == nil {
		role, level, interests, skills = p.Role, p.ExperienceLevel, p.Interests, p.Skills
	}

	activity, actErr := uc.lessons.RecentActivity(ctx, userID, maxRecentActivity)
	achievements, achErr := uc.lessons.Achievements(ctx, userID)
	if actErr != nil || achErr != nil {
		slog.Warn("dashboard reads failed, serving demo data",
			"user_id", userID, "activity_error", actErr, "achievements_error", achErr)
		return uc.demo(userID)
	}
	if activity == nil {
		activity = []lesson.Activity{}
	}
	if achievements == nil {
		achievements = []lesson.Achievement{}
	}

	suggestions := uc.matcher.SuggestSkills(interests, skills, &career.Profile{
		UserID: userID, CurrentRole: role, ExperienceLevel: level,
	})

	return Overview{
		UserID:          userID,
		Progress:        uc.lessons.Progress(ctx, userID),
		RecentActivity:  activity,
		Achievements:    achievements,
		Recommendations: uc.lessons.Recommend(ctx, role, level, interests),
		CareerPaths:     suggestions.CareerPaths,
	}
}

// demo is the canned dashboard served when persistence is unreachable. It
// keeps the frontend functional and is flagged so nothing mistakes it for
// real progress.
func (uc *UseCase) demo(userID string) Overview {
	now := uc.now().UTC()
	return Overview{
		UserID: userID,
		Progress: lesson.ProgressSnapshot{
			TotalLessons:      15,
			CompletedLessons:  15,
			AverageProgress:   100,
			CurrentStreakDays: 7,
		},
		RecentActivity: []lesson.Activity{
			{Kind: "lesson_completed", Description: "Completed lesson Intro to Python", OccurredAt: now.Add(-2 * time.Hour)},
			{Kind: "lesson_completed", Description: "Completed lesson Git Basics", OccurredAt: now.Add(-26 * time.Hour)},
		},
		Achievements: []lesson.Achievement{
			{ID: lesson.AchievementFirstLesson, Title: "First Lesson Completed", Description: "Completed your first lesson", EarnedAt: now.AddDate(0, 0, -10)},
			{ID: lesson.AchievementWeekStreak, Title: "Week Warrior", Description: "Completed lessons for 7 days straight", EarnedAt: now.AddDate(0, 0, -3)},
		},
		Recommendations: []lesson.Recommendation{
			{Topic: "Learn python", Reason: "Popular starting point across career paths"},
			{Topic: "Learn git", Reason: "Everyday tool in every technical role"},
		},
		CareerPaths: []string{"Software Developer", "Data Scientist", "Backend Developer"},
		DemoData:    true,
	}
}
