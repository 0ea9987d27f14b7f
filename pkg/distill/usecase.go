package distill

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/rahul370139/train-backend/pkg/embed"
	"github.com/rahul370139/train-backend/pkg/llm"
)

// ErrEmptyDocument is returned when extraction yields no usable text.
var ErrEmptyDocument = errors.New("document contains no extractable text")

// ErrNoModel is returned when no language model is configured.
var ErrNoModel = errors.New("no language model configured")

const (
	maxBullets     = 10
	maxConcurrency = 4
	// detectSample is how much of the document the framework detector sees.
	detectSample = 1000
)

// Request is one distill job: a raw document plus presentation options.
type Request struct {
	OwnerID          string
	Filename         string
	Data             []byte
	ExplanationLevel ExplanationLevel
	Framework        Framework
}

// UseCase turns uploaded documents into lessons: chunked summaries, study
// aids and chunk embeddings, persisted as a unit.
type UseCase struct {
	repo     Repository
	model    llm.ChatModel
	embedder embed.Embedder
	now      func() time.Time
}

func New(repo Repository, model llm.ChatModel, embedder embed.Embedder) *UseCase {
	return &UseCase{repo: repo, model: model, embedder: embedder, now: time.Now}
}

// Distill runs the full pipeline and persists the resulting lesson.
func (uc *UseCase) Distill(ctx context.Context, req Request) (Lesson, error) {
	text, err := ExtractText(req.Filename, req.Data)
	if err != nil {
		return Lesson{}, err
	}
	return uc.DistillText(ctx, req, text)
}

// DistillText is the pipeline behind Distill for callers that already hold
// plain text, such as chat file uploads.
func (uc *UseCase) DistillText(ctx context.Context, req Request, text string) (Lesson, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Lesson{}, ErrEmptyDocument
	}
	if uc.model == nil {
		return Lesson{}, ErrNoModel
	}

	level := req.ExplanationLevel
	if level == "" {
		level = LevelIntern
	}

	chunks := ChunkText(text)
	summary, err := uc.mapReduceSummary(ctx, chunks, level)
	if err != nil {
		return Lesson{}, fmt.Errorf("summarize document: %w", err)
	}

	cards, quiz, err := uc.flashcardsAndQuiz(ctx, summary, level)
	if err != nil {
		return Lesson{}, fmt.Errorf("generate study aids: %w", err)
	}

	framework := req.Framework
	if framework == "" || framework == FrameworkGeneric {
		framework = uc.detectFramework(ctx, text)
	}

	lesson := Lesson{
		ID:               uuid.New(),
		OwnerID:          req.OwnerID,
		Title:            lessonTitle(req.Filename),
		Framework:        framework,
		ExplanationLevel: level,
		Summary:          summary,
		Bullets:          extractBullets(summary),
		Flashcards:       cards,
		Quiz:             quiz,
		ConceptMap:       uc.conceptMap(ctx, summary),
		CreatedAt:        uc.now().UTC(),
	}

	stored := make([]Chunk, len(chunks))
	for i, c := range chunks {
		stored[i] = Chunk{Index: i, Text: c}
	}
	uc.embedChunks(ctx, stored)

	if uc.repo != nil {
		if err := uc.repo.CreateLesson(ctx, lesson, stored); err != nil {
			return Lesson{}, fmt.Errorf("store lesson: %w", err)
		}
	}
	return lesson, nil
}

// Lesson returns a stored lesson by id.
func (uc *UseCase) Lesson(ctx context.Context, id uuid.UUID) (Lesson, error) {
	return uc.repo.GetLesson(ctx, id)
}

// LessonsByOwner lists a user's lessons, newest first.
func (uc *UseCase) LessonsByOwner(ctx context.Context, ownerID string, limit, offset int) ([]Lesson, error) {
	out, err := uc.repo.ListByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []Lesson{}
	}
	return out, nil
}

// Summarize condenses plain text without persisting anything. Chat uploads
// use it to build conversation context.
func (uc *UseCase) Summarize(ctx context.Context, text string, level ExplanationLevel) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyDocument
	}
	if uc.model == nil {
		return "", ErrNoModel
	}
	if level == "" {
		level = LevelIntern
	}
	return uc.mapReduceSummary(ctx, ChunkText(text), level)
}

// mapReduceSummary summarizes every chunk concurrently, then merges the
// per-chunk bullets into one cheat sheet.
func (uc *UseCase) mapReduceSummary(ctx context.Context, chunks []string, level ExplanationLevel) (string, error) {
	mapped := make([]string, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrency)
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			system := "Summarize the text into 3 concise bullets. " + level.Prompt()
			out, err := uc.model.Ask(gctx, system, chunk)
			if err != nil {
				return fmt.Errorf("summarize chunk %d: %w", i, err)
			}
			mapped[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}
	if len(mapped) == 1 {
		return strings.TrimSpace(mapped[0]), nil
	}

	system := "You are creating a training cheat-sheet. " + level.Prompt()
	user := fmt.Sprintf("Merge these bullet groups into max %d key bullets:\n%s",
		maxBullets, strings.Join(mapped, "\n"))
	out, err := uc.model.Ask(ctx, system, user)
	if err != nil {
		return "", fmt.Errorf("reduce summaries: %w", err)
	}
	return strings.TrimSpace(out), nil
}

type studyAids struct {
	Flashcards []Flashcard    `json:"flashcards"`
	Quiz       []QuizQuestion `json:"quiz"`
}

func (uc *UseCase) flashcardsAndQuiz(ctx context.Context, summary string, level ExplanationLevel) ([]Flashcard, []QuizQuestion, error) {
	system := "Return valid JSON and nothing else. " + level.Prompt()
	user := "Given the following summary, create:\n" +
		"1. 5 flashcards as a JSON list of { \"front\": str, \"back\": str }\n" +
		"2. 5 multiple-choice questions as a JSON list of { \"question\": str, \"options\": [a,b,c,d], \"answer\": \"a\" }\n" +
		"Return a JSON object with keys 'flashcards' and 'quiz'.\n" +
		"Summary:\n" + summary
	raw, err := uc.model.Ask(ctx, system, user)
	if err != nil {
		return nil, nil, err
	}
	var aids studyAids
	if err := llm.DecodeJSON(raw, &aids); err != nil {
		return nil, nil, fmt.Errorf("parse study aids: %w", err)
	}
	if aids.Flashcards == nil {
		aids.Flashcards = []Flashcard{}
	}
	if aids.Quiz == nil {
		aids.Quiz = []QuizQuestion{}
	}
	return aids.Flashcards, aids.Quiz, nil
}

// conceptMap asks for a concept graph and degrades to an empty one on any
// model or parse failure.
func (uc *UseCase) conceptMap(ctx context.Context, summary string) ConceptMap {
	user := "Create a concept map from this summary. Return as JSON with this structure:\n" +
		`{"nodes": [{"id": "concept1", "label": "Concept Name", "level": 1}], ` +
		`"edges": [{"from": "concept1", "to": "concept2", "label": "relationship"}]}` +
		"\n\nSummary: " + summary
	raw, err := uc.model.Ask(ctx, "Return valid JSON and nothing else.", user)
	if err != nil {
		slog.Warn("concept map generation failed", "error", err)
		return EmptyConceptMap()
	}
	var cm ConceptMap
	if err := llm.DecodeJSON(raw, &cm); err != nil {
		slog.Warn("concept map parse failed", "error", err)
		return EmptyConceptMap()
	}
	if cm.Nodes == nil {
		cm.Nodes = []ConceptNode{}
	}
	if cm.Edges == nil {
		cm.Edges = []ConceptEdge{}
	}
	return cm
}

// detectFramework classifies the document, degrading to generic.
func (uc *UseCase) detectFramework(ctx context.Context, text string) Framework {
	sample := text
	if len(sample) > detectSample {
		sample = sample[:detectSample]
	}
	var values []string
	for _, f := range Frameworks() {
		values = append(values, string(f))
	}
	user := fmt.Sprintf(
		"Analyze this text and identify the primary framework, tool, or technology category.\n"+
			"Return only one of these exact values: %s\n\nText: %s",
		strings.Join(values, ", "), sample)
	raw, err := uc.model.Ask(ctx, "Reply with a single word.", user)
	if err != nil {
		slog.Warn("framework detection failed", "error", err)
		return FrameworkGeneric
	}
	return ParseFramework(strings.ToLower(strings.TrimSpace(raw)))
}

// embedChunks fills in embeddings, falling back to deterministic local
// vectors when the provider is missing or failing.
func (uc *UseCase) embedChunks(ctx context.Context, chunks []Chunk) {
	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}
	if uc.embedder != nil {
		vecs, err := uc.embedder.Embed(ctx, texts)
		if err == nil && len(vecs) == len(chunks) {
			for i := range chunks {
				chunks[i].Embedding = vecs[i]
			}
			return
		}
		if err != nil {
			slog.Warn("embedding provider failed, using local vectors", "error", err)
		}
	}
	for i := range chunks {
		chunks[i].Embedding = embed.Fallback(chunks[i].Text)
	}
}

// extractBullets pulls up to maxBullets bullet lines out of the cheat sheet.
// Non-bullet lines count too when the model skipped the markers.
func extractBullets(summary string) []string {
	var bullets []string
	for _, line := range strings.Split(summary, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*• \t")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		bullets = append(bullets, line)
		if len(bullets) == maxBullets {
			break
		}
	}
	if bullets == nil {
		bullets = []string{}
	}
	return bullets
}

func lessonTitle(filename string) string {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)
	base = strings.TrimSpace(base)
	if base == "" || base == "." {
		return "Untitled lesson"
	}
	return base
}
