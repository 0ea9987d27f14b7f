package distill

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Framework tags a lesson with the primary technology its material covers.
type Framework string

const (
	FrameworkFastAPI         Framework = "fastapi"
	FrameworkDocker          Framework = "docker"
	FrameworkPython          Framework = "python"
	FrameworkMachineLearning Framework = "machine_learning"
	FrameworkAI              Framework = "ai"
	FrameworkLangchain       Framework = "langchain"
	FrameworkReact           Framework = "react"
	FrameworkNextJS          Framework = "nextjs"
	FrameworkTypeScript      Framework = "typescript"
	FrameworkNodeJS          Framework = "nodejs"
	FrameworkDatabase        Framework = "database"
	FrameworkCloud           Framework = "cloud"
	FrameworkDevOps          Framework = "devops"
	FrameworkFrontend        Framework = "frontend"
	FrameworkBackend         Framework = "backend"
	FrameworkGeneric         Framework = "generic"
)

// Frameworks lists every valid framework tag, generic last.
func Frameworks() []Framework {
	return []Framework{
		FrameworkFastAPI, FrameworkDocker, FrameworkPython, FrameworkMachineLearning,
		FrameworkAI, FrameworkLangchain, FrameworkReact, FrameworkNextJS,
		FrameworkTypeScript, FrameworkNodeJS, FrameworkDatabase, FrameworkCloud,
		FrameworkDevOps, FrameworkFrontend, FrameworkBackend, FrameworkGeneric,
	}
}

// ParseFramework maps a string onto a known framework, falling back to generic.
func ParseFramework(s string) Framework {
	for _, f := range Frameworks() {
		if string(f) == s {
			return f
		}
	}
	return FrameworkGeneric
}

// ExplanationLevel controls how the model pitches its explanations.
type ExplanationLevel string

const (
	LevelFiveYearOld ExplanationLevel = "5_year_old"
	LevelIntern      ExplanationLevel = "intern"
	LevelSenior      ExplanationLevel = "senior"
)

// ExplanationLevels lists the valid levels in increasing depth.
func ExplanationLevels() []ExplanationLevel {
	return []ExplanationLevel{LevelFiveYearOld, LevelIntern, LevelSenior}
}

// ParseExplanationLevel maps a string onto a known level, defaulting to intern.
func ParseExplanationLevel(s string) ExplanationLevel {
	switch ExplanationLevel(s) {
	case LevelFiveYearOld, LevelIntern, LevelSenior:
		return ExplanationLevel(s)
	}
	return LevelIntern
}

// Prompt returns the instruction fragment injected into every model request
// for this level.
func (l ExplanationLevel) Prompt() string {
	switch l {
	case LevelFiveYearOld:
		return "Explain this like you're talking to a 5-year-old. Use simple words, analogies, and avoid technical jargon."
	case LevelSenior:
		return "Explain this for an experienced professional. You can use technical terms and assume advanced knowledge."
	default:
		return "Explain this for someone who is learning and has basic knowledge. Use clear examples and step-by-step explanations."
	}
}

// Flashcard is one front/back study card.
type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// QuizQuestion is one multiple-choice question. Answer holds the correct
// option letter, "a" through "d".
type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// ConceptNode is one concept in the lesson's concept map. Level 1 nodes are
// central concepts; higher levels are supporting ones.
type ConceptNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Level int    `json:"level"`
}

// ConceptEdge is a labeled relationship between two concepts.
type ConceptEdge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label"`
}

// ConceptMap is the lesson's concept graph. Both slices are always non-nil;
// an empty map means generation was skipped or failed.
type ConceptMap struct {
	Nodes []ConceptNode `json:"nodes"`
	Edges []ConceptEdge `json:"edges"`
}

// EmptyConceptMap returns a map with empty, non-nil node and edge lists.
func EmptyConceptMap() ConceptMap {
	return ConceptMap{Nodes: []ConceptNode{}, Edges: []ConceptEdge{}}
}

// Lesson is a distilled document: the cheat sheet plus generated study aids.
type Lesson struct {
	ID               uuid.UUID        `json:"lesson_id"`
	OwnerID          string           `json:"owner_id"`
	Title            string           `json:"title"`
	Framework        Framework        `json:"framework"`
	ExplanationLevel ExplanationLevel `json:"explanation_level"`
	Summary          string           `json:"summary"`
	Bullets          []string         `json:"bullets"`
	Flashcards       []Flashcard      `json:"flashcards"`
	Quiz             []QuizQuestion   `json:"quiz"`
	ConceptMap       ConceptMap       `json:"concept_map"`
	CreatedAt        time.Time        `json:"created_at"`
}

// Chunk is one windowed slice of the source document with its embedding.
type Chunk struct {
	Index     int
	Text      string
	Embedding []float32
}

// Repository persists lessons and their chunks.
type Repository interface {
	CreateLesson(ctx context.Context, lesson Lesson, chunks []Chunk) error
	GetLesson(ctx context.Context, id uuid.UUID) (Lesson, error)
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]Lesson, error)
}
