package repository

import (
	"context"
	"errors"

	"agrobot/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type KnowledgeRepository struct {
	db *pgxpool.Pool
}

func NewKnowledgeRepository(db *pgxpool.Pool) *KnowledgeRepository {
	return &KnowledgeRepository{db: db}
}

// Lookup finds an answer by exact question match. No normalization, no fuzzy
// matching. A miss is not an error.
func (r *KnowledgeRepository) Lookup(ctx context.Context, question string) (string, bool, error) {
	var answer string
	err := r.db.QueryRow(ctx,
		"SELECT answer FROM knowledge_base WHERE question = $1",
		question).Scan(&answer)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return answer, true, nil
}

// Upsert inserts or replaces a question/answer pair. This is the out-of-band
// population path used by the admin API; the bot itself only reads.
func (r *KnowledgeRepository) Upsert(ctx context.Context, question, answer string) error {
	_, err := r.db.Exec(ctx,
		"INSERT INTO knowledge_base (question, answer) VALUES ($1, $2) ON CONFLICT (question) DO UPDATE SET answer = EXCLUDED.answer",
		question, answer)
	return err
}

// List returns all knowledge entries.
func (r *KnowledgeRepository) List(ctx context.Context) ([]entities.KnowledgeEntry, error) {
	rows, err := r.db.Query(ctx, "SELECT id, question, answer FROM knowledge_base ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []entities.KnowledgeEntry
	for rows.Next() {
		var e entities.KnowledgeEntry
		if err := rows.Scan(&e.ID, &e.Question, &e.Answer); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
