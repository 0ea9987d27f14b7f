package roadmap

// Request is the input to roadmap generation. TargetRole may be empty when the
// caller wants the role inferred from skills and interests.
type Request struct {
	UserID          string   `json:"user_id,omitempty"`
	TargetRole      string   `json:"target_role"`
	Skills          []string `json:"skills"`
	Interests       []string `json:"interests"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
}

// Tier is one learning stage of the roadmap.
type Tier struct {
	Name           string   `json:"name"` // foundational | intermediate | advanced
	Skills         []string `json:"skills"`
	DurationMonths int      `json:"duration_months"`
}

// Milestone marks the completion of a tier.
type Milestone struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	DurationMonths int    `json:"duration_months"`
}

// InterviewPrep bundles role-specific interview questions with preparation tips.
type InterviewPrep struct {
	Role      string   `json:"role"`
	Questions []string `json:"questions"`
	Tips      []string `json:"tips"`
}

// Roadmap is the full generation result.
type Roadmap struct {
	TargetRole          string        `json:"target_role"`
	Confidence          float64       `json:"confidence"`
	Tiers               []Tier        `json:"tiers"`
	Milestones          []Milestone   `json:"milestones"`
	TotalDurationMonths int           `json:"total_duration_months"`
	AlreadyKnown        []string      `json:"already_known"`
	InterviewPrep       InterviewPrep `json:"interview_prep"`
}
