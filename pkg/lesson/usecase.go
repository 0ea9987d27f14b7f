package lesson

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/rahul370139/train-backend/pkg/llm"
	"github.com/rahul370139/train-backend/pkg/nlp"
	"github.com/rahul370139/train-backend/pkg/taxonomy"
)

const maxRecommendations = 5

// UseCase tracks lesson completions, derives progress and achievements from
// them, and recommends what to learn next.
type UseCase struct {
	repo  Repository
	model llm.ChatModel
	now   func() time.Time
}

func New(repo Repository, model llm.ChatModel) *UseCase {
	return &UseCase{repo: repo, model: model, now: time.Now}
}

// Complete upserts the user's progress on a lesson, appends the activity and
// awards any achievements the new state earns. Returns the achievements
// awarded by this call.
func (uc *UseCase) Complete(ctx context.Context, userID string, lessonID uuid.UUID, progress int) ([]Achievement, error) {
	if progress < 0 || progress > 100 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidProgress, progress)
	}

	c := Completion{
		UserID:      userID,
		LessonID:    lessonID,
		Progress:    progress,
		CompletedAt: uc.now().UTC(),
	}
	if err := uc.repo.UpsertCompletion(ctx, c); err != nil {
		return nil, fmt.Errorf("store completion: %w", err)
	}

	kind := "lesson_progress"
	desc := fmt.Sprintf("Reached %d%% on lesson %s", progress, lessonID)
	if progress == 100 {
		kind = "lesson_completed"
		desc = fmt.Sprintf("Completed lesson %s", lessonID)
	}
	if err := uc.repo.AppendActivity(ctx, Activity{
		UserID: userID, Kind: kind, Description: desc, OccurredAt: c.CompletedAt,
	}); err != nil {
		return nil, fmt.Errorf("append activity: %w", err)
	}

	return uc.awardAchievements(ctx, userID)
}

// Progress derives the user's snapshot from stored completions. A read
// failure degrades to an empty snapshot.
func (uc *UseCase) Progress(ctx context.Context, userID string) ProgressSnapshot {
	completions, err := uc.repo.CompletionsByUser(ctx, userID)
	if err != nil {
		slog.Warn("progress read failed", "user_id", userID, "error", err)
		return ProgressSnapshot{}
	}
	return snapshot(completions, uc.now().UTC())
}

// CompletedLessons lists lessons the user finished, most recent first.
func (uc *UseCase) CompletedLessons(ctx context.Context, userID string) ([]Completion, error) {
	completions, err := uc.repo.CompletionsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	done := make([]Completion, 0, len(completions))
	for _, c := range completions {
		if c.Progress == 100 {
			done = append(done, c)
		}
	}
	sort.SliceStable(done, func(i, j int) bool {
		return done[i].CompletedAt.After(done[j].CompletedAt)
	})
	return done, nil
}

// Achievements lists the user's badges, deduplicated by id.
func (uc *UseCase) Achievements(ctx context.Context, userID string) ([]Achievement, error) {
	earned, err := uc.repo.AchievementsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	out := make([]Achievement, 0, len(earned))
	for _, a := range earned {
		if _, dup := seen[a.ID]; dup {
			continue
		}
		seen[a.ID] = struct{}{}
		out = append(out, a)
	}
	return out, nil
}

// RecentActivity returns the newest feed entries, capped at limit.
func (uc *UseCase) RecentActivity(ctx context.Context, userID string, limit int) ([]Activity, error) {
	return uc.repo.RecentActivity(ctx, userID, limit)
}

// Recommend suggests lesson topics for a role and level. The taxonomy gives
// a deterministic baseline; the model may rephrase it but never replaces it
// on failure.
func (uc *UseCase) Recommend(ctx context.Context, role, experienceLevel string, interests []string) []Recommendation {
	base := uc.taxonomyRecommendations(role, experienceLevel, interests)
	if uc.model == nil {
		return base
	}

	topics := make([]string, len(base))
	for i, r := range base {
		topics[i] = r.Topic
	}
	system := "You are a learning advisor. Reply with a JSON array of {\"topic\": str, \"reason\": str} and nothing else."
	user := fmt.Sprintf(
		"Suggest up to %d short lesson topics for a %s at %s level interested in %v. Start from these: %v.",
		maxRecommendations, role, experienceLevel, interests, topics)
	raw, err := uc.model.Ask(ctx, system, user)
	if err != nil {
		slog.Warn("recommendation enrichment failed", "error", err)
		return base
	}
	var enriched []Recommendation
	if err := llm.DecodeJSON(raw, &enriched); err != nil || len(enriched) == 0 {
		return base
	}
	if len(enriched) > maxRecommendations {
		enriched = enriched[:maxRecommendations]
	}
	return enriched
}

func (uc *UseCase) taxonomyRecommendations(role, experienceLevel string, interests []string) []Recommendation {
	var skills []string
	if c, ok := taxonomy.CareerByTitle(role); ok {
		switch experienceLevel {
		case "senior":
			skills = c.Tiers.Advanced
		case "mid":
			skills = c.Tiers.Intermediate
		default:
			skills = c.Tiers.Foundational
		}
	}
	if len(skills) == 0 {
		for _, it := range interests {
			if info, ok := taxonomy.Interest(nlp.Normalize(it)); ok {
				skills = append(skills, info.Skills...)
			}
		}
	}
	if len(skills) == 0 {
		skills = []string{"python", "git", "sql"}
	}

	seen := map[string]struct{}{}
	out := make([]Recommendation, 0, maxRecommendations)
	for _, sk := range skills {
		if _, dup := seen[sk]; dup {
			continue
		}
		seen[sk] = struct{}{}
		out = append(out, Recommendation{
			Topic:  "Learn " + sk,
			Reason: fmt.Sprintf("Core skill for your %s path", roleOrDefault(role)),
		})
		if len(out) == maxRecommendations {
			break
		}
	}
	return out
}

func roleOrDefault(role string) string {
	if role == "" {
		return "learning"
	}
	return role
}

// awardAchievements checks every rule against the stored completions and
// awards what is newly earned. The repository ignores duplicate ids, so the
// returned slice holds only first-time awards.
func (uc *UseCase) awardAchievements(ctx context.Context, userID string) ([]Achievement, error) {
	completions, err := uc.repo.CompletionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load completions: %w", err)
	}
	already, err := uc.repo.AchievementsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load achievements: %w", err)
	}
	have := map[string]struct{}{}
	for _, a := range already {
		have[a.ID] = struct{}{}
	}

	completed := 0
	for _, c := range completions {
		if c.Progress == 100 {
			completed++
		}
	}
	streak := streakDays(completions, uc.now().UTC())

	var awarded []Achievement
	award := func(id, title, desc string) error {
		if _, ok := have[id]; ok {
			return nil
		}
		a := Achievement{ID: id, Title: title, Description: desc, EarnedAt: uc.now().UTC()}
		if err := uc.repo.AwardAchievement(ctx, userID, a); err != nil {
			return fmt.Errorf("award %s: %w", id, err)
		}
		awarded = append(awarded, a)
		return nil
	}

	if completed >= 1 {
		if err := award(AchievementFirstLesson, "First Lesson Completed", "Completed your first lesson"); err != nil {
			return nil, err
		}
	}
	if streak >= 7 {
		if err := award(AchievementWeekStreak, "Week Warrior", "Completed lessons for 7 days straight"); err != nil {
			return nil, err
		}
	}
	if completed >= 10 {
		if err := award(AchievementTenLessons, "Ten Lessons Done", "Completed ten lessons"); err != nil {
			return nil, err
		}
	}
	return awarded, nil
}

func snapshot(completions []Completion, now time.Time) ProgressSnapshot {
	s := ProgressSnapshot{TotalLessons: len(completions)}
	if len(completions) == 0 {
		return s
	}
	total := 0
	for _, c := range completions {
		total += c.Progress
		if c.Progress == 100 {
			s.CompletedLessons++
		}
	}
	s.AverageProgress = float64(total) / float64(len(completions))
	s.CurrentStreakDays = streakDays(completions, now)
	return s
}

// streakDays counts consecutive days with activity, ending today or
// yesterday so a streak survives until the day after it is broken.
func streakDays(completions []Completion, now time.Time) int {
	days := map[string]struct{}{}
	for _, c := range completions {
		days[c.CompletedAt.UTC().Format("2006-01-02")] = struct{}{}
	}
	if len(days) == 0 {
		return 0
	}

	day := now
	if _, ok := days[day.Format("2006-01-02")]; !ok {
		day = day.AddDate(0, 0, -1)
		if _, ok := days[day.Format("2006-01-02")]; !ok {
			return 0
		}
	}
	streak := 0
	for {
		if _, ok := days[day.Format("2006-01-02")]; !ok {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
