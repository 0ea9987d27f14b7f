// Package taxonomy holds the static career taxonomy the matching services run
// on: careers with required skills and interest tags, skill relationships, and
// interest-to-skill mappings. All labels are stored in canonical form
// (nlp.CanonicalSkill) so lookups survive free-text client input.
package taxonomy

// Career describes one candidate career in the taxonomy.
type Career struct {
	Title      string
	Blurb      string
	SalaryLow  int
	SalaryHigh int
	GrowthPct  float64
	// Demand ranks careers when the user selected nothing to match on.
	Demand    float64
	Skills    []string
	Interests []string
	Tiers     TierCurriculum
	Questions []string
}

// TierCurriculum is the full skill curriculum of a career, split by roadmap tier.
type TierCurriculum struct {
	Foundational []string
	Intermediate []string
	Advanced     []string
}

// SkillInfo describes how a skill relates to other skills and careers.
type SkillInfo struct {
	Related    []string
	Careers    []string
	Category   string
	Difficulty string // beginner | intermediate | advanced
}

// InterestInfo maps a high-level interest to starter skills and career paths.
type InterestInfo struct {
	Skills      []string
	Careers     []string
	Description string
}

var careers = []Career{
	{
		Title:      "Software Developer",
		Blurb:      "Design, build and ship software applications end to end",
		SalaryLow:  60000,
		SalaryHigh: 120000,
		GrowthPct:  15.0,
		Demand:     0.95,
		Skills:     []string{"python", "api", "testing", "git"},
		Interests:  []string{"technology"},
		Tiers: TierCurriculum{
			Foundational: []string{"python", "git", "algorithms", "testing"},
			Intermediate: []string{"api", "databases", "docker", "system design"},
			Advanced:     []string{"architecture", "performance", "mentoring"},
		},
		Questions: []string{
			"Walk me through a project you built from scratch.",
			"How do you decide what to test and what not to?",
			"Explain the difference between a process and a thread.",
			"How would you debug a request that is slow only in production?",
		},
	},
	{
		Title:      "Frontend Developer",
		Blurb:      "Build user interfaces for the web",
		SalaryLow:  55000,
		SalaryHigh: 110000,
		GrowthPct:  12.0,
		Demand:     0.85,
		Skills:     []string{"javascript", "html", "css"},
		Interests:  []string{"technology", "design", "web"},
		Tiers: TierCurriculum{
			Foundational: []string{"html", "css", "javascript", "git"},
			Intermediate: []string{"react", "typescript", "testing", "accessibility"},
			Advanced:     []string{"performance", "architecture", "design systems"},
		},
		Questions: []string{
			"What happens between typing a URL and seeing the page?",
			"How do you keep a large component tree fast?",
			"Explain the CSS cascade and specificity.",
			"When would you reach for server-side rendering?",
		},
	},
	{
		Title:      "Backend Developer",
		Blurb:      "Develop server-side applications and APIs",
		SalaryLow:  65000,
		SalaryHigh: 130000,
		GrowthPct:  18.0,
		Demand:     0.9,
		Skills:     []string{"python", "java", "api", "databases"},
		Interests:  []string{"technology", "web"},
		Tiers: TierCurriculum{
			Foundational: []string{"python", "sql", "git", "api"},
			Intermediate: []string{"databases", "docker", "caching", "message queues"},
			Advanced:     []string{"distributed systems", "architecture", "observability"},
		},
		Questions: []string{
			"Design a rate limiter for a public API.",
			"How do you evolve a database schema without downtime?",
			"What are the trade-offs between REST and message-driven APIs?",
			"How would you make an endpoint idempotent?",
		},
	},
	{
		Title:      "Full Stack Developer",
		Blurb:      "Work across the frontend and backend of web products",
		SalaryLow:  60000,
		SalaryHigh: 125000,
		GrowthPct:  16.0,
		Demand:     0.88,
		Skills:     []string{"javascript", "python", "api", "react"},
		Interests:  []string{"technology", "web"},
		Tiers: TierCurriculum{
			Foundational: []string{"html", "css", "javascript", "python", "git"},
			Intermediate: []string{"react", "api", "databases", "testing"},
			Advanced:     []string{"architecture", "devops", "system design"},
		},
		Questions: []string{
			"Where do you draw the line between client and server logic?",
			"How do you keep API contracts in sync across the stack?",
			"Describe how you would add auth to a greenfield web app.",
		},
	},
	{
		Title:      "Data Scientist",
		Blurb:      "Analyze data and build machine learning models",
		SalaryLow:  70000,
		SalaryHigh: 140000,
		GrowthPct:  25.0,
		Demand:     0.92,
		Skills:     []string{"python", "ml", "statistics"},
		Interests:  []string{"data science", "technology", "ai"},
		Tiers: TierCurriculum{
			Foundational: []string{"python", "sql", "statistics", "data analysis"},
			Intermediate: []string{"ml", "visualization", "feature engineering"},
			Advanced:     []string{"deep learning", "mlops", "experiment design"},
		},
		Questions: []string{
			"How do you know a model is overfitting, and what do you do about it?",
			"Explain p-values to a non-technical stakeholder.",
			"Walk through how you would design an A/B test.",
			"When is a simple heuristic better than a model?",
		},
	},
	{
		Title:      "Data Analyst",
		Blurb:      "Turn raw data into reports and decisions",
		SalaryLow:  55000,
		SalaryHigh: 100000,
		GrowthPct:  20.0,
		Demand:     0.8,
		Skills:     []string{"sql", "statistics", "visualization"},
		Interests:  []string{"data science"},
		Tiers: TierCurriculum{
			Foundational: []string{"sql", "excel", "statistics"},
			Intermediate: []string{"python", "visualization", "data modeling"},
			Advanced:     []string{"ml", "experiment design", "storytelling"},
		},
		Questions: []string{
			"How do you validate a dataset you did not produce?",
			"Describe a time your analysis changed a decision.",
			"What makes a dashboard actually useful?",
		},
	},
	{
		Title:      "DevOps Engineer",
		Blurb:      "Automate infrastructure, deployments and operations",
		SalaryLow:  65000,
		SalaryHigh: 130000,
		GrowthPct:  20.0,
		Demand:     0.87,
		Skills:     []string{"docker", "aws", "cicd"},
		Interests:  []string{"devops", "technology", "cloud"},
		Tiers: TierCurriculum{
			Foundational: []string{"linux", "git", "docker", "scripting"},
			Intermediate: []string{"cicd", "aws", "kubernetes", "terraform"},
			Advanced:     []string{"observability", "sre practices", "architecture"},
		},
		Questions: []string{
			"A deploy doubled p99 latency. Where do you look first?",
			"How do you design a rollback-safe deployment pipeline?",
			"Containers vs VMs: when does each win?",
			"What would you monitor on a brand-new service?",
		},
	},
	{
		Title:      "Cloud Engineer",
		Blurb:      "Design and operate cloud infrastructure",
		SalaryLow:  70000,
		SalaryHigh: 135000,
		GrowthPct:  22.0,
		Demand:     0.84,
		Skills:     []string{"aws", "kubernetes", "terraform"},
		Interests:  []string{"cloud", "devops", "technology"},
		Tiers: TierCurriculum{
			Foundational: []string{"linux", "networking", "aws"},
			Intermediate: []string{"kubernetes", "terraform", "cicd"},
			Advanced:     []string{"multi region design", "cost optimization", "security"},
		},
		Questions: []string{
			"Design a highly available setup for a stateful service.",
			"How do you keep cloud costs from drifting?",
			"Explain VPC peering to someone new to networking.",
		},
	},
	{
		Title:      "ML Engineer",
		Blurb:      "Put machine learning models into production",
		SalaryLow:  80000,
		SalaryHigh: 150000,
		GrowthPct:  28.0,
		Demand:     0.82,
		Skills:     []string{"python", "ml", "mlops"},
		Interests:  []string{"ai", "data science", "technology"},
		Tiers: TierCurriculum{
			Foundational: []string{"python", "ml", "sql"},
			Intermediate: []string{"mlops", "docker", "feature engineering"},
			Advanced:     []string{"deep learning", "model serving", "architecture"},
		},
		Questions: []string{
			"How do you detect model drift after deployment?",
			"Batch vs online inference: how do you choose?",
			"What goes into a feature store and why?",
		},
	},
	{
		Title:      "UI/UX Designer",
		Blurb:      "Design user experiences and interfaces",
		SalaryLow:  50000,
		SalaryHigh: 105000,
		GrowthPct:  13.0,
		Demand:     0.75,
		Skills:     []string{"ui ux", "figma", "user research"},
		Interests:  []string{"design"},
		Tiers: TierCurriculum{
			Foundational: []string{"design principles", "figma", "wireframing"},
			Intermediate: []string{"user research", "prototyping", "html", "css"},
			Advanced:     []string{"design systems", "accessibility", "strategy"},
		},
		Questions: []string{
			"Walk me through your process from brief to handoff.",
			"How do you argue for a design decision with data?",
			"Critique the onboarding flow of an app you use daily.",
		},
	},
	{
		Title:      "QA Engineer",
		Blurb:      "Keep software quality high through testing and automation",
		SalaryLow:  50000,
		SalaryHigh: 100000,
		GrowthPct:  10.0,
		Demand:     0.7,
		Skills:     []string{"testing", "selenium", "automation"},
		Interests:  []string{"technology"},
		Tiers: TierCurriculum{
			Foundational: []string{"testing", "test design", "git"},
			Intermediate: []string{"selenium", "automation", "api"},
			Advanced:     []string{"performance testing", "test strategy", "cicd"},
		},
		Questions: []string{
			"How do you test a feature with no written requirements?",
			"What belongs in a smoke suite versus a regression suite?",
			"Describe a bug that automation would never have caught.",
		},
	},
	{
		Title:      "Mobile Developer",
		Blurb:      "Build native and cross-platform mobile applications",
		SalaryLow:  60000,
		SalaryHigh: 120000,
		GrowthPct:  14.0,
		Demand:     0.78,
		Skills:     []string{"react native", "flutter", "mobile"},
		Interests:  []string{"mobile development", "technology"},
		Tiers: TierCurriculum{
			Foundational: []string{"javascript", "mobile", "git"},
			Intermediate: []string{"react native", "flutter", "api"},
			Advanced:     []string{"performance", "offline sync", "app architecture"},
		},
		Questions: []string{
			"Native vs cross-platform: how do you decide?",
			"How do you handle flaky network conditions in an app?",
			"What does a good offline-first design look like?",
		},
	},
	{
		Title:      "Digital Marketing Specialist",
		Blurb:      "Promote products through digital channels and analytics",
		SalaryLow:  45000,
		SalaryHigh: 90000,
		GrowthPct:  10.0,
		Demand:     0.65,
		Skills:     []string{"seo", "content creation", "analytics"},
		Interests:  []string{"marketing"},
		Tiers: TierCurriculum{
			Foundational: []string{"seo", "content creation", "social media"},
			Intermediate: []string{"analytics", "paid advertising", "email marketing"},
			Advanced:     []string{"marketing strategy", "attribution", "team leadership"},
		},
		Questions: []string{
			"How would you grow organic traffic for a new product?",
			"Which metrics actually matter for a campaign and why?",
			"Describe a campaign that failed and what you learned.",
		},
	},
}

var skills = map[string]SkillInfo{
	"python": {
		Related:    []string{"api", "data analysis", "ml", "automation", "testing", "django"},
		Careers:    []string{"Software Developer", "Data Scientist", "Backend Developer"},
		Category:   "Programming",
		Difficulty: "beginner",
	},
	"javascript": {
		Related:    []string{"react", "nodejs", "typescript", "html", "css", "api"},
		Careers:    []string{"Frontend Developer", "Full Stack Developer", "Software Developer"},
		Category:   "Programming",
		Difficulty: "beginner",
	},
	"react": {
		Related:    []string{"javascript", "typescript", "redux", "next js", "ui ux", "testing"},
		Careers:    []string{"Frontend Developer", "Full Stack Developer"},
		Category:   "Web Development",
		Difficulty: "intermediate",
	},
	"api": {
		Related:    []string{"python", "javascript", "nodejs", "databases", "graphql"},
		Careers:    []string{"Backend Developer", "Full Stack Developer"},
		Category:   "Backend Development",
		Difficulty: "intermediate",
	},
	"ml": {
		Related:    []string{"python", "statistics", "data analysis", "deep learning", "mlops"},
		Careers:    []string{"Data Scientist", "ML Engineer"},
		Category:   "Data Science",
		Difficulty: "advanced",
	},
	"statistics": {
		Related:    []string{"python", "data analysis", "ml", "visualization", "sql"},
		Careers:    []string{"Data Scientist", "Data Analyst"},
		Category:   "Data Science",
		Difficulty: "intermediate",
	},
	"sql": {
		Related:    []string{"databases", "data analysis", "visualization", "python"},
		Careers:    []string{"Data Analyst", "Backend Developer"},
		Category:   "Database",
		Difficulty: "beginner",
	},
	"databases": {
		Related:    []string{"sql", "api", "data modeling", "postgresql"},
		Careers:    []string{"Backend Developer", "Software Developer"},
		Category:   "Database",
		Difficulty: "intermediate",
	},
	"docker": {
		Related:    []string{"kubernetes", "aws", "cicd", "linux"},
		Careers:    []string{"DevOps Engineer", "Cloud Engineer"},
		Category:   "DevOps",
		Difficulty: "intermediate",
	},
	"aws": {
		Related:    []string{"docker", "kubernetes", "terraform", "serverless"},
		Careers:    []string{"Cloud Engineer", "DevOps Engineer"},
		Category:   "Cloud",
		Difficulty: "intermediate",
	},
	"kubernetes": {
		Related:    []string{"docker", "aws", "terraform", "observability"},
		Careers:    []string{"DevOps Engineer", "Cloud Engineer"},
		Category:   "DevOps",
		Difficulty: "advanced",
	},
	"cicd": {
		Related:    []string{"docker", "git", "automation", "testing"},
		Careers:    []string{"DevOps Engineer"},
		Category:   "DevOps",
		Difficulty: "intermediate",
	},
	"ui ux": {
		Related:    []string{"figma", "user research", "prototyping", "html", "css"},
		Careers:    []string{"UI/UX Designer", "Frontend Developer"},
		Category:   "Design",
		Difficulty: "intermediate",
	},
	"testing": {
		Related:    []string{"selenium", "automation", "python", "javascript"},
		Careers:    []string{"QA Engineer", "Software Developer"},
		Category:   "Testing",
		Difficulty: "intermediate",
	},
	"html": {
		Related:    []string{"css", "javascript", "accessibility"},
		Careers:    []string{"Frontend Developer"},
		Category:   "Web Development",
		Difficulty: "beginner",
	},
	"css": {
		Related:    []string{"html", "javascript", "design systems"},
		Careers:    []string{"Frontend Developer"},
		Category:   "Web Development",
		Difficulty: "beginner",
	},
}

var interests = map[string]InterestInfo{
	"technology": {
		Skills:      []string{"python", "javascript", "git"},
		Careers:     []string{"Software Developer", "Full Stack Developer", "Backend Developer"},
		Description: "Build software and applications",
	},
	"design": {
		Skills:      []string{"ui ux", "figma", "html", "css"},
		Careers:     []string{"UI/UX Designer", "Frontend Developer"},
		Description: "Create user experiences people enjoy",
	},
	"data science": {
		Skills:      []string{"python", "statistics", "sql", "ml"},
		Careers:     []string{"Data Scientist", "Data Analyst", "ML Engineer"},
		Description: "Analyze data and build models",
	},
	"marketing": {
		Skills:      []string{"seo", "content creation", "analytics"},
		Careers:     []string{"Digital Marketing Specialist"},
		Description: "Promote products and services",
	},
	"devops": {
		Skills:      []string{"docker", "aws", "cicd"},
		Careers:     []string{"DevOps Engineer", "Cloud Engineer"},
		Description: "Manage infrastructure and deployments",
	},
	"mobile development": {
		Skills:      []string{"react native", "flutter", "mobile"},
		Careers:     []string{"Mobile Developer"},
		Description: "Build mobile applications",
	},
}

// interestOrder keeps default suggestions deterministic (maps do not).
var interestOrder = []string{
	"technology", "design", "data science", "marketing", "devops", "mobile development",
}

// roleInterests maps keywords found in a declared role to suggested interests.
var roleInterests = map[string][]string{
	"developer": {"technology", "devops"},
	"engineer":  {"technology", "devops"},
	"designer":  {"design", "technology"},
	"analyst":   {"data science", "technology"},
	"marketing": {"marketing", "data science"},
	"student":   {"technology", "design", "data science"},
}

// Careers returns all careers in taxonomy order. The slice is shared; callers
// must not mutate it.
func Careers() []Career { return careers }

// CareerByTitle finds a career by title, case- and punctuation-insensitively.
func CareerByTitle(title string) (Career, bool) {
	want := normalizeTitle(title)
	for _, c := range careers {
		if normalizeTitle(c.Title) == want {
			return c, true
		}
	}
	return Career{}, false
}

// Skill looks up a canonical skill label.
func Skill(name string) (SkillInfo, bool) {
	s, ok := skills[name]
	return s, ok
}

// Interest looks up a canonical interest label.
func Interest(name string) (InterestInfo, bool) {
	i, ok := interests[name]
	return i, ok
}

// InterestNames returns all interest labels in presentation order.
func InterestNames() []string { return interestOrder }

// RoleInterests suggests interests for a declared role by keyword.
func RoleInterests(role string) []string {
	out := []string{}
	seen := map[string]struct{}{}
	for _, kw := range []string{"developer", "engineer", "designer", "analyst", "marketing", "student"} {
		if !ContainsFold(role, kw) {
			continue
		}
		for _, it := range roleInterests[kw] {
			if _, ok := seen[it]; ok {
				continue
			}
			seen[it] = struct{}{}
			out = append(out, it)
		}
	}
	return out
}
