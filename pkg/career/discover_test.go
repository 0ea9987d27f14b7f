package career

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverScoresAndOrders(t *testing.T) {
	svc := NewService()

	got := svc.Discover(nil, []string{"javascript", "react"}, nil)

	require.NotEmpty(t, got.RecommendedCareers)
	require.LessOrEqual(t, len(got.RecommendedCareers), maxCandidateCareers)

	for i := 1; i < len(got.RecommendedCareers); i++ {
		assert.GreaterOrEqual(t, got.RecommendedCareers[i-1].Score, got.RecommendedCareers[i].Score)
	}

	// javascript+react covers 2 of Full Stack's 4 required skills and 1 of
	// Frontend's 3, so Full Stack outranks Frontend here.
	assert.Equal(t, "Full Stack Developer", got.RecommendedCareers[0].Title)
	assert.InDelta(t, 0.3, got.RecommendedCareers[0].Score, 1e-9)

	var frontend *Candidate
	for i := range got.RecommendedCareers {
		if got.RecommendedCareers[i].Title == "Frontend Developer" {
			frontend = &got.RecommendedCareers[i]
		}
	}
	require.NotNil(t, frontend)
	assert.InDelta(t, 33.3, frontend.SkillMatch, 1e-9)
}

func TestDiscoverInterestOnlySelection(t *testing.T) {
	svc := NewService()

	got := svc.Discover([]string{"design"}, nil, nil)

	require.NotEmpty(t, got.RecommendedCareers)
	// With no skills selected the interest weight alone decides.
	top := got.RecommendedCareers[0]
	assert.Contains(t, []string{"Frontend Developer", "UI/UX Designer"}, top.Title)
	assert.Equal(t, 0.0, top.SkillMatch)
}

func TestDiscoverEmptySelectionFallsBackToDemand(t *testing.T) {
	svc := NewService()

	got := svc.Discover(nil, nil, nil)

	require.Len(t, got.RecommendedCareers, maxCandidateCareers)
	titles := make([]string, len(got.RecommendedCareers))
	for i, c := range got.RecommendedCareers {
		titles[i] = c.Title
	}
	assert.Equal(t, []string{
		"Software Developer",
		"Data Scientist",
		"Backend Developer",
		"Full Stack Developer",
		"DevOps Engineer",
	}, titles)
}

func TestDiscoverDeterministic(t *testing.T) {
	svc := NewService()

	first := svc.Discover([]string{"technology"}, []string{"python", "sql"}, nil)
	second := svc.Discover([]string{"technology"}, []string{"python", "sql"}, nil)

	assert.Equal(t, first, second)
}

func TestDiscoverSkillAnalysis(t *testing.T) {
	svc := NewService()

	got := svc.Discover(nil, []string{"python", "ml", "kubernetes", "sql"}, nil)

	// ml and kubernetes are advanced skills but three are needed for senior.
	assert.Equal(t, "mid", got.SkillAnalysis.ExperienceLevel)
	assert.Equal(t, 4, got.SkillAnalysis.TotalSkills)
	assert.NotEmpty(t, got.SkillAnalysis.SkillCategories)
}

func TestDiscoverProfileOverridesExperience(t *testing.T) {
	svc := NewService()

	got := svc.Discover(nil, []string{"ml", "kubernetes"}, &Profile{ExperienceLevel: "senior"})

	assert.Equal(t, "senior", got.SkillAnalysis.ExperienceLevel)
}

func TestDiscoverInsightsPrimaryFocus(t *testing.T) {
	svc := NewService()

	got := svc.Discover(nil, []string{"python", "javascript", "sql"}, nil)

	// Two Programming skills beat one Database skill.
	assert.Equal(t, "Programming", got.Insights.PrimaryFocus)
	assert.Contains(t, got.Insights.StrengthAreas, "Programming")
	assert.Contains(t, got.Insights.StrengthAreas, "Database")
}
