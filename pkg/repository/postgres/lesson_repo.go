package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rahul370139/train-backend/pkg/distill"
)

// LessonRepository stores distilled lessons and their chunk embeddings.
type LessonRepository struct {
	pool *pgxpool.Pool
}

func NewLessonRepository(pool *pgxpool.Pool) (*LessonRepository, error) {
	r := &LessonRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *LessonRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS lessons (
	id UUID PRIMARY KEY,
	owner_id TEXT NOT NULL,
	title TEXT NOT NULL,
	framework TEXT NOT NULL,
	explanation_level TEXT NOT NULL,
	summary TEXT NOT NULL,
	bullets JSONB NOT NULL,
	flashcards JSONB NOT NULL,
	quiz JSONB NOT NULL,
	concept_map JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS lessons_owner_idx ON lessons(owner_id, created_at DESC);
CREATE TABLE IF NOT EXISTS lesson_chunks (
	lesson_id UUID NOT NULL REFERENCES lessons(id) ON DELETE CASCADE,
	chunk_index INT NOT NULL,
	content TEXT NOT NULL,
	embedding JSONB NOT NULL,
	PRIMARY KEY (lesson_id, chunk_index)
);
`)
	return err
}

func (r *LessonRepository) CreateLesson(ctx context.Context, lesson distill.Lesson, chunks []distill.Chunk) error {
	bullets, err := json.Marshal(lesson.Bullets)
	if err != nil {
		return err
	}
	flashcards, err := json.Marshal(lesson.Flashcards)
	if err != nil {
		return err
	}
	quiz, err := json.Marshal(lesson.Quiz)
	if err != nil {
		return err
	}
	conceptMap, err := json.Marshal(lesson.ConceptMap)
	if err != nil {
		return err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
INSERT INTO lessons (id, owner_id, title, framework, explanation_level, summary, bullets, flashcards, quiz, concept_map, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`, lesson.ID, lesson.OwnerID, lesson.Title, lesson.Framework, lesson.ExplanationLevel,
		lesson.Summary, bullets, flashcards, quiz, conceptMap, lesson.CreatedAt)
	if err != nil {
		return err
	}

	for _, c := range chunks {
		embedding, err := json.Marshal(c.Embedding)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `
INSERT INTO lesson_chunks (lesson_id, chunk_index, content, embedding)
VALUES ($1, $2, $3, $4)
`, lesson.ID, c.Index, c.Text, embedding); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *LessonRepository) GetLesson(ctx context.Context, id uuid.UUID) (distill.Lesson, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, owner_id, title, framework, explanation_level, summary, bullets, flashcards, quiz, concept_map, created_at
FROM lessons WHERE id = $1
`, id)
	return scanLesson(row)
}

func (r *LessonRepository) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]distill.Lesson, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, owner_id, title, framework, explanation_level, summary, bullets, flashcards, quiz, concept_map, created_at
FROM lessons WHERE owner_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []distill.Lesson
	for rows.Next() {
		l, err := scanLesson(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func scanLesson(row pgx.Row) (distill.Lesson, error) {
	var l distill.Lesson
	var bullets, flashcards, quiz, conceptMap []byte
	var created time.Time
	if err := row.Scan(&l.ID, &l.OwnerID, &l.Title, &l.Framework, &l.ExplanationLevel,
		&l.Summary, &bullets, &flashcards, &quiz, &conceptMap, &created); err != nil {
		return distill.Lesson{}, err
	}
	if err := json.Unmarshal(bullets, &l.Bullets); err != nil {
		return distill.Lesson{}, fmt.Errorf("decode bullets: %w", err)
	}
	if err := json.Unmarshal(flashcards, &l.Flashcards); err != nil {
		return distill.Lesson{}, fmt.Errorf("decode flashcards: %w", err)
	}
	if err := json.Unmarshal(quiz, &l.Quiz); err != nil {
		return distill.Lesson{}, fmt.Errorf("decode quiz: %w", err)
	}
	if err := json.Unmarshal(conceptMap, &l.ConceptMap); err != nil {
		return distill.Lesson{}, fmt.Errorf("decode concept map: %w", err)
	}
	l.CreatedAt = created.UTC()
	return l, nil
}
