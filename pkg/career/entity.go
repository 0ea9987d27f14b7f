package career

// Profile carries the optional user context the matching services accept.
// All fields may be empty; matching then falls back to defaults.
type Profile struct {
	UserID          string   `json:"user_id,omitempty"`
	CurrentRole     string   `json:"current_role,omitempty"`
	ExperienceLevel string   `json:"experience_level,omitempty"` // entry | mid | senior
	Skills          []string `json:"skills,omitempty"`
	Interests       []string `json:"interests,omitempty"`
}

// SalaryRange is annual salary in USD.
type SalaryRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Candidate is one scored career recommendation.
type Candidate struct {
	Title          string      `json:"title"`
	Score          float64     `json:"score"`
	SkillMatch     float64     `json:"skill_match"` // percent, 0..100
	SalaryRange    SalaryRange `json:"salary_range"`
	GrowthPct      float64     `json:"growth_pct"`
	RequiredSkills []string    `json:"required_skills"`
	DayInLife      string      `json:"day_in_life"`
}

// Insights summarizes what the user's selections say about them.
type Insights struct {
	PrimaryFocus    string   `json:"primary_focus"`
	StrengthAreas   []string `json:"strength_areas"`
	Recommendations []string `json:"recommendations"`
	NextSteps       []string `json:"next_steps"`
}

// SkillAnalysis describes the selection itself rather than any career.
type SkillAnalysis struct {
	TotalSkills     int      `json:"total_skills"`
	SkillCategories []string `json:"skill_categories"`
	ExperienceLevel string   `json:"experience_level"`
}

// DiscoverResult is the full career-discovery response.
type DiscoverResult struct {
	RecommendedCareers []Candidate   `json:"recommended_careers"`
	Insights           Insights      `json:"insights"`
	SkillAnalysis      SkillAnalysis `json:"skill_analysis"`
}

// Suggestions is the adaptive skill-suggestion response.
type Suggestions struct {
	SuggestedSkills []string            `json:"suggested_skills"`
	Categorized     map[string][]string `json:"categorized_suggestions"`
	CareerPaths     []string            `json:"career_paths"`
	Message         string              `json:"message"`
}

// InterestOption describes one interest in the initial-suggestions response.
type InterestOption struct {
	Skills      []string `json:"skills"`
	CareerPaths []string `json:"career_paths"`
	Description string   `json:"description"`
}

// InitialSuggestions is the entry point of the discovery flow.
type InitialSuggestions struct {
	SuggestedInterests []string                  `json:"suggested_interests"`
	InitialSkills      map[string]InterestOption `json:"initial_skills"`
	Message            string                    `json:"message"`
}
