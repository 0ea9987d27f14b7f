package roadmap

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahul370139/train-backend/pkg/cache"
	"github.com/rahul370139/train-backend/pkg/career"
)

type fakeModel struct {
	reply string
	err   error
	calls int
}

func (f *fakeModel) Ask(_ context.Context, _ string, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newUseCase(model *fakeModel) *UseCase {
	if model == nil {
		return New(career.NewService(), nil, cache.NewMemory(), time.Hour)
	}
	return New(career.NewService(), model, cache.NewMemory(), time.Hour)
}

func TestGenerateKnownRole(t *testing.T) {
	uc := newUseCase(nil)

	rm, err := uc.Generate(context.Background(), Request{
		TargetRole: "Frontend Developer",
		Skills:     []string{"html", "css"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Frontend Developer", rm.TargetRole)
	require.Len(t, rm.Tiers, 3)
	assert.Equal(t, "foundational", rm.Tiers[0].Name)
	assert.Equal(t, "intermediate", rm.Tiers[1].Name)
	assert.Equal(t, "advanced", rm.Tiers[2].Name)

	// html and css are owned, so the foundational tier only teaches the rest
	// and its duration halves from the 6-month baseline.
	assert.NotContains(t, rm.Tiers[0].Skills, "html")
	assert.NotContains(t, rm.Tiers[0].Skills, "css")
	assert.Contains(t, rm.Tiers[0].Skills, "javascript")
	assert.Equal(t, 3, rm.Tiers[0].DurationMonths)

	assert.Equal(t, 12, rm.Tiers[1].DurationMonths)
	assert.Equal(t, 18, rm.Tiers[2].DurationMonths)
	assert.Equal(t, 33, rm.TotalDurationMonths)
	assert.ElementsMatch(t, []string{"html", "css"}, rm.AlreadyKnown)

	require.Len(t, rm.Milestones, 3)
	assert.Equal(t, rm.Tiers[0].DurationMonths, rm.Milestones[0].DurationMonths)

	assert.NotEmpty(t, rm.InterviewPrep.Questions)
	assert.NotEmpty(t, rm.InterviewPrep.Tips)
}

func TestGenerateDurationFloor(t *testing.T) {
	uc := newUseCase(nil)

	rm, err := uc.Generate(context.Background(), Request{
		TargetRole: "Frontend Developer",
		Skills:     []string{"html", "css", "javascript", "git"},
	})
	require.NoError(t, err)

	// The whole foundational tier is covered; duration bottoms out at the floor.
	assert.Empty(t, rm.Tiers[0].Skills)
	assert.Equal(t, 2, rm.Tiers[0].DurationMonths)
}

func TestGenerateInfersRoleFromSkills(t *testing.T) {
	uc := newUseCase(nil)

	rm, err := uc.Generate(context.Background(), Request{
		Skills: []string{"javascript", "html", "css"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Frontend Developer", rm.TargetRole)
	assert.InDelta(t, 0.6, rm.Confidence, 1e-9)
}

func TestGenerateUnknownRole(t *testing.T) {
	uc := newUseCase(nil)

	_, err := uc.Generate(context.Background(), Request{TargetRole: "wizard"})
	assert.ErrorIs(t, err, ErrUnknownRole)

	_, err = uc.InterviewPrep(context.Background(), "wizard")
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestGenerateCachesResult(t *testing.T) {
	model := &fakeModel{reply: `["tip one", "tip two"]`}
	uc := newUseCase(model)
	req := Request{TargetRole: "Backend Developer", Skills: []string{"python"}}

	first, err := uc.Generate(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, model.calls)
}

func TestGenerateCacheKeyIgnoresSkillOrder(t *testing.T) {
	model := &fakeModel{reply: `["tip"]`}
	uc := newUseCase(model)

	_, err := uc.Generate(context.Background(), Request{
		TargetRole: "Backend Developer", Skills: []string{"python", "sql"},
	})
	require.NoError(t, err)
	_, err = uc.Generate(context.Background(), Request{
		TargetRole: "Backend Developer", Skills: []string{"sql", "python"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, model.calls)
}

func TestInterviewPrepModelFailureFallsBack(t *testing.T) {
	model := &fakeModel{err: errors.New("provider down")}
	uc := newUseCase(model)

	prep, err := uc.InterviewPrep(context.Background(), "Data Scientist")
	require.NoError(t, err)

	assert.Equal(t, "Data Scientist", prep.Role)
	assert.NotEmpty(t, prep.Questions)
	assert.Equal(t, defaultTips("Data Scientist"), prep.Tips)
}

func TestInterviewPrepUsesModelTips(t *testing.T) {
	model := &fakeModel{reply: "```json\n[\"study sql\", \"mock interviews\"]\n```"}
	uc := newUseCase(model)

	prep, err := uc.InterviewPrep(context.Background(), "Data Analyst")
	require.NoError(t, err)

	assert.Equal(t, []string{"study sql", "mock interviews"}, prep.Tips)
}
