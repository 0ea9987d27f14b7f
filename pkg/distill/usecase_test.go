package distill

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedModel routes each request by prompt content, the way the real
// pipeline distinguishes its calls.
type scriptedModel struct {
	mu        sync.Mutex
	summaries int

	studyAidsReply  string
	conceptMapReply string
	conceptMapErr   error
	frameworkReply  string
}

func (m *scriptedModel) Ask(_ context.Context, system, user string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch {
	case strings.Contains(system, "3 concise bullets"):
		m.summaries++
		return "- point one\n- point two\n- point three", nil
	case strings.Contains(system, "cheat-sheet"):
		return "- merged one\n- merged two\n- merged three", nil
	case strings.Contains(user, "flashcards"):
		return m.studyAidsReply, nil
	case strings.Contains(user, "concept map"):
		if m.conceptMapErr != nil {
			return "", m.conceptMapErr
		}
		return m.conceptMapReply, nil
	case strings.Contains(user, "framework"):
		return m.frameworkReply, nil
	}
	return "", errors.New("unexpected prompt")
}

type memRepo struct {
	mu      sync.Mutex
	lessons []Lesson
	chunks  map[uuid.UUID][]Chunk
	err     error
}

func (r *memRepo) CreateLesson(_ context.Context, lesson Lesson, chunks []Chunk) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.chunks == nil {
		r.chunks = map[uuid.UUID][]Chunk{}
	}
	r.lessons = append(r.lessons, lesson)
	r.chunks[lesson.ID] = chunks
	return nil
}

func (r *memRepo) GetLesson(_ context.Context, id uuid.UUID) (Lesson, error) {
	for _, l := range r.lessons {
		if l.ID == id {
			return l, nil
		}
	}
	return Lesson{}, errors.New("not found")
}

func (r *memRepo) ListByOwner(_ context.Context, ownerID string, _, _ int) ([]Lesson, error) {
	var out []Lesson
	for _, l := range r.lessons {
		if l.OwnerID == ownerID {
			out = append(out, l)
		}
	}
	return out, nil
}

func defaultModel() *scriptedModel {
	return &scriptedModel{
		studyAidsReply: `{"flashcards": [{"front": "Q", "back": "A"}],` +
			` "quiz": [{"question": "?", "options": ["a", "b", "c", "d"], "answer": "a"}]}`,
		conceptMapReply: `{"nodes": [{"id": "n1", "label": "Core", "level": 1}],` +
			` "edges": [{"from": "n1", "to": "n2", "label": "uses"}]}`,
		frameworkReply: "docker",
	}
}

func TestDistillTextFullPipeline(t *testing.T) {
	model := defaultModel()
	repo := &memRepo{}
	uc := New(repo, model, nil)

	text := strings.Repeat("docker containers isolate processes and package dependencies. ", 150)
	lesson, err := uc.DistillText(context.Background(), Request{
		OwnerID:  "user-1",
		Filename: "intro_to_docker.pdf",
	}, text)
	require.NoError(t, err)

	assert.Equal(t, "user-1", lesson.OwnerID)
	assert.Equal(t, "intro to docker", lesson.Title)
	assert.Equal(t, LevelIntern, lesson.ExplanationLevel)
	assert.Equal(t, FrameworkDocker, lesson.Framework)
	assert.Equal(t, []string{"merged one", "merged two", "merged three"}, lesson.Bullets)
	require.Len(t, lesson.Flashcards, 1)
	require.Len(t, lesson.Quiz, 1)
	assert.Len(t, lesson.ConceptMap.Nodes, 1)

	require.Len(t, repo.lessons, 1)
	chunks := repo.chunks[lesson.ID]
	require.NotEmpty(t, chunks)
	// One summary call per stored chunk, then one reduce call.
	assert.Equal(t, len(chunks), model.summaries)
	for _, c := range chunks {
		assert.Len(t, c.Embedding, 384)
	}
}

func TestDistillTextEmpty(t *testing.T) {
	uc := New(&memRepo{}, defaultModel(), nil)

	_, err := uc.DistillText(context.Background(), Request{Filename: "x.pdf"}, "   ")
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestDistillTextConceptMapDegrades(t *testing.T) {
	model := defaultModel()
	model.conceptMapErr = errors.New("provider down")
	uc := New(&memRepo{}, model, nil)

	lesson, err := uc.DistillText(context.Background(), Request{
		OwnerID: "u", Filename: "notes.pdf", Framework: FrameworkPython,
	}, "short lesson text about python")
	require.NoError(t, err)

	assert.Equal(t, EmptyConceptMap(), lesson.ConceptMap)
	assert.Equal(t, FrameworkPython, lesson.Framework)
}

func TestDistillTextUnknownFrameworkReplyDefaultsToGeneric(t *testing.T) {
	model := defaultModel()
	model.frameworkReply = "cobol"
	uc := New(&memRepo{}, model, nil)

	lesson, err := uc.DistillText(context.Background(), Request{
		OwnerID: "u", Filename: "notes.pdf",
	}, "some text with no clear technology")
	require.NoError(t, err)

	assert.Equal(t, FrameworkGeneric, lesson.Framework)
}

func TestDistillTextStudyAidParseFailureIsFatal(t *testing.T) {
	model := defaultModel()
	model.studyAidsReply = "this is not json"
	uc := New(&memRepo{}, model, nil)

	_, err := uc.DistillText(context.Background(), Request{Filename: "a.pdf"}, "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "study aids")
}

func TestDistillTextRepoWriteFailureIsLoud(t *testing.T) {
	repo := &memRepo{err: errors.New("db down")}
	uc := New(repo, defaultModel(), nil)

	_, err := uc.DistillText(context.Background(), Request{Filename: "a.pdf"}, "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store lesson")
}

func TestSummarize(t *testing.T) {
	uc := New(nil, defaultModel(), nil)

	got, err := uc.Summarize(context.Background(), "a short document", LevelSenior)
	require.NoError(t, err)
	assert.Equal(t, "- point one\n- point two\n- point three", got)
}

func TestExtractTextRejectsUnknownFormat(t *testing.T) {
	_, err := ExtractText("notes.txt", []byte("plain"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseExplanationLevel(t *testing.T) {
	assert.Equal(t, LevelFiveYearOld, ParseExplanationLevel("5_year_old"))
	assert.Equal(t, LevelIntern, ParseExplanationLevel(""))
	assert.Equal(t, LevelIntern, ParseExplanationLevel("phd"))
}

func TestParseFramework(t *testing.T) {
	assert.Equal(t, FrameworkReact, ParseFramework("react"))
	assert.Equal(t, FrameworkGeneric, ParseFramework("fortran"))
	assert.Len(t, Frameworks(), 16)
}
