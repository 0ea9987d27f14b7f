package career

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahul370139/train-backend/pkg/taxonomy"
)

func TestSuggestSkillsNeverEchoesSelection(t *testing.T) {
	svc := NewService()

	got := svc.SuggestSkills(nil, []string{"python", "sql", "javascript"}, nil)

	require.NotEmpty(t, got.SuggestedSkills)
	for _, sk := range got.SuggestedSkills {
		assert.NotContains(t, []string{"python", "sql", "javascript"}, sk)
	}
	for cat, skills := range got.Categorized {
		for _, sk := range skills {
			assert.NotContains(t, []string{"python", "sql", "javascript"}, sk, "category %s", cat)
		}
	}
}

func TestSuggestSkillsAliasesNormalized(t *testing.T) {
	svc := NewService()

	// "js" is the same selection as "javascript", so neither spelling comes back.
	got := svc.SuggestSkills(nil, []string{"js"}, nil)

	require.NotEmpty(t, got.SuggestedSkills)
	assert.NotContains(t, got.SuggestedSkills, "javascript")
	assert.NotContains(t, got.SuggestedSkills, "js")
}

func TestSuggestSkillsDeterministic(t *testing.T) {
	svc := NewService()

	first := svc.SuggestSkills([]string{"technology"}, []string{"python"}, nil)
	second := svc.SuggestSkills([]string{"technology"}, []string{"python"}, nil)

	assert.Equal(t, first, second)
}

func TestSuggestSkillsCaps(t *testing.T) {
	svc := NewService()

	got := svc.SuggestSkills(
		[]string{"technology", "data science", "design", "business", "marketing", "education"},
		[]string{"python", "javascript", "sql"},
		nil,
	)

	assert.LessOrEqual(t, len(got.SuggestedSkills), maxSuggestedSkills)
	for cat, skills := range got.Categorized {
		assert.LessOrEqual(t, len(skills), maxPerCategory, "category %s", cat)
	}
	assert.LessOrEqual(t, len(got.CareerPaths), maxCareerPaths)
}

func TestSuggestSkillsEmptySelectionDefaults(t *testing.T) {
	svc := NewService()

	got := svc.SuggestSkills(nil, nil, nil)

	assert.NotEmpty(t, got.SuggestedSkills)
	assert.NotEmpty(t, got.CareerPaths)
	assert.NotEmpty(t, got.Message)
}

func TestSuggestSkillsEntryLevelOrdersBeginnersFirst(t *testing.T) {
	svc := NewService()
	profile := &Profile{ExperienceLevel: "entry"}

	got := svc.SuggestSkills([]string{"technology"}, nil, profile)

	require.NotEmpty(t, got.SuggestedSkills)
	// Once a non-beginner skill appears, no beginner skill may follow it.
	seenHard := false
	for _, sk := range got.SuggestedSkills {
		if isBeginner(sk) {
			assert.False(t, seenHard, "beginner skill %q listed after a harder one", sk)
		} else {
			seenHard = true
		}
	}
}

func TestInitialSuggestionsForRole(t *testing.T) {
	svc := NewService()

	got := svc.InitialSuggestions(&Profile{CurrentRole: "developer"})

	require.NotEmpty(t, got.SuggestedInterests)
	assert.Contains(t, got.SuggestedInterests, "technology")
	for _, name := range got.SuggestedInterests {
		opt, ok := got.InitialSkills[name]
		require.True(t, ok, "missing option for %q", name)
		assert.NotEmpty(t, opt.Skills)
	}
}

func TestInitialSuggestionsAnonymous(t *testing.T) {
	svc := NewService()

	got := svc.InitialSuggestions(nil)

	assert.NotEmpty(t, got.SuggestedInterests)
	assert.NotEmpty(t, got.Message)
}

func isBeginner(skill string) bool {
	info, ok := taxonomy.Skill(skill)
	return ok && info.Difficulty == "beginner"
}
