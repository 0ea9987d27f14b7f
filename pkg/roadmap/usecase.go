package roadmap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/rahul370139/train-backend/pkg/cache"
	"github.com/rahul370139/train-backend/pkg/career"
	"github.com/rahul370139/train-backend/pkg/llm"
	"github.com/rahul370139/train-backend/pkg/nlp"
	"github.com/rahul370139/train-backend/pkg/taxonomy"
)

// ErrUnknownRole is returned when neither the stated role nor the selection
// resolves to a known career. A roadmap is never fabricated for such a role.
var ErrUnknownRole = errors.New("unknown target role")

// Tier baselines in months for a learner starting from zero, and the floors a
// fully covered tier never drops below.
var (
	tierNames     = []string{"foundational", "intermediate", "advanced"}
	tierBaselines = map[string]int{"foundational": 6, "intermediate": 12, "advanced": 18}
	tierFloors    = map[string]int{"foundational": 2, "intermediate": 4, "advanced": 6}
)

// UseCase generates learning roadmaps from the career taxonomy, caching
// results and asking the language model only for interview tips.
type UseCase struct {
	matcher *career.Service
	model   llm.ChatModel
	cache   cache.Cache
	ttl     time.Duration
}

func New(matcher *career.Service, model llm.ChatModel, c cache.Cache, ttl time.Duration) *UseCase {
	return &UseCase{matcher: matcher, model: model, cache: c, ttl: ttl}
}

// Generate builds the three-tier roadmap for the request. The role is taken
// from the request when stated, otherwise inferred from skills and interests;
// an unresolvable role yields ErrUnknownRole.
func (uc *UseCase) Generate(ctx context.Context, req Request) (Roadmap, error) {
	role, ok := uc.matcher.ResolveRole(req.TargetRole, req.Interests, req.Skills)
	if !ok {
		return Roadmap{}, fmt.Errorf("%w: %q", ErrUnknownRole, req.TargetRole)
	}

	key := uc.fingerprint(role.Title, req)
	if uc.cache != nil {
		if raw, hit := uc.cache.Get(ctx, key); hit {
			var cached Roadmap
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
		}
	}

	owned := nlp.CanonicalSet(req.Skills)
	tiers := buildTiers(role.Tiers, owned)

	total := 0
	milestones := make([]Milestone, 0, len(tiers))
	for _, t := range tiers {
		total += t.DurationMonths
		milestones = append(milestones, Milestone{
			Title:          fmt.Sprintf("Complete the %s tier", t.Name),
			Description:    milestoneDescription(t),
			DurationMonths: t.DurationMonths,
		})
	}

	score, _ := career.MatchScore(role, req.Interests, req.Skills)

	rm := Roadmap{
		TargetRole:          role.Title,
		Confidence:          score,
		Tiers:               tiers,
		Milestones:          milestones,
		TotalDurationMonths: total,
		AlreadyKnown:        ownedFromCurriculum(role.Tiers, owned),
		InterviewPrep:       uc.interviewPrep(ctx, role),
	}

	if uc.cache != nil {
		if raw, err := json.Marshal(rm); err == nil {
			uc.cache.Set(ctx, key, raw, uc.ttl)
		}
	}
	return rm, nil
}

// InterviewPrep answers the standalone interview-prep request for a role. It
// does not need skills or interests, only a resolvable role.
func (uc *UseCase) InterviewPrep(ctx context.Context, targetRole string) (InterviewPrep, error) {
	role, ok := uc.matcher.ResolveRole(targetRole, nil, nil)
	if !ok {
		return InterviewPrep{}, fmt.Errorf("%w: %q", ErrUnknownRole, targetRole)
	}
	return uc.interviewPrep(ctx, role), nil
}

func (uc *UseCase) fingerprint(roleTitle string, req Request) string {
	skills := make([]string, 0, len(req.Skills))
	for s := range nlp.CanonicalSet(req.Skills) {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	interests := make([]string, 0, len(req.Interests))
	for _, it := range req.Interests {
		interests = append(interests, nlp.Normalize(it))
	}
	sort.Strings(interests)
	return cache.Fingerprint("roadmap",
		roleTitle,
		strings.Join(skills, ","),
		strings.Join(interests, ","),
		req.ExperienceLevel,
	)
}

func buildTiers(curriculum taxonomy.TierCurriculum, owned map[string]struct{}) []Tier {
	perTier := map[string][]string{
		"foundational": curriculum.Foundational,
		"intermediate": curriculum.Intermediate,
		"advanced":     curriculum.Advanced,
	}
	out := make([]Tier, 0, len(tierNames))
	for _, name := range tierNames {
		full := perTier[name]
		remaining := make([]string, 0, len(full))
		for _, sk := range full {
			if _, have := owned[nlp.CanonicalSkill(sk)]; !have {
				remaining = append(remaining, sk)
			}
		}
		out = append(out, Tier{
			Name:           name,
			Skills:         remaining,
			DurationMonths: tierDuration(name, len(full), len(full)-len(remaining)),
		})
	}
	return out
}

// tierDuration shrinks the baseline in proportion to how much of the tier the
// learner already covers, never dropping below the tier floor.
func tierDuration(name string, total, ownedCount int) int {
	baseline := tierBaselines[name]
	floor := tierFloors[name]
	if total == 0 {
		return floor
	}
	frac := float64(ownedCount) / float64(total)
	months := int(math.Round(float64(baseline) * (1 - frac)))
	if months < floor {
		return floor
	}
	return months
}

func ownedFromCurriculum(curriculum taxonomy.TierCurriculum, owned map[string]struct{}) []string {
	var known []string
	for _, tier := range [][]string{curriculum.Foundational, curriculum.Intermediate, curriculum.Advanced} {
		for _, sk := range tier {
			if _, have := owned[nlp.CanonicalSkill(sk)]; have {
				known = append(known, sk)
			}
		}
	}
	if known == nil {
		known = []string{}
	}
	return known
}

func milestoneDescription(t Tier) string {
	if len(t.Skills) == 0 {
		return "You already cover this tier. Review it and move on."
	}
	return "Learn " + strings.Join(t.Skills, ", ") + "."
}

func (uc *UseCase) interviewPrep(ctx context.Context, role taxonomy.Career) InterviewPrep {
	prep := InterviewPrep{
		Role:      role.Title,
		Questions: role.Questions,
		Tips:      defaultTips(role.Title),
	}
	if uc.model == nil {
		return prep
	}

	system := "You are a career coach. Reply with a JSON array of short strings and nothing else."
	user := fmt.Sprintf("Give 5 concise preparation tips for a %s interview.", role.Title)
	raw, err := uc.model.Ask(ctx, system, user)
	if err != nil {
		slog.Warn("interview tips unavailable, using defaults", "role", role.Title, "error", err)
		return prep
	}
	var tips []string
	if err := llm.DecodeJSON(raw, &tips); err != nil || len(tips) == 0 {
		return prep
	}
	prep.Tips = tips
	return prep
}

func defaultTips(role string) []string {
	return []string{
		"Review the fundamentals the role lists as required skills.",
		"Prepare two or three projects you can discuss in depth.",
		fmt.Sprintf("Practice explaining %s concepts to a non-expert.", role),
		"Prepare questions about the team's day-to-day work.",
		"Do a timed mock interview before the real one.",
	}
}
