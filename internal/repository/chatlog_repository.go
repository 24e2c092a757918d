package repository

import (
	"context"

	"agrobot/internal/entities"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ChatLogRepository struct {
	db *pgxpool.Pool
}

func NewChatLogRepository(db *pgxpool.Pool) *ChatLogRepository {
	return &ChatLogRepository{db: db}
}

// Insert appends one message/response pair to the chat log.
func (r *ChatLogRepository) Insert(ctx context.Context, userID, message, response string) error {
	_, err := r.db.Exec(ctx,
		"INSERT INTO chat_logs (user_id, message, response) VALUES ($1, $2, $3)",
		userID, message, response)
	return err
}

// TopQuestions returns the most frequent exact message texts, descending by
// count. Ties keep the store's grouping order.
func (r *ChatLogRepository) TopQuestions(ctx context.Context, limit int) ([]entities.QuestionCount, error) {
	rows, err := r.db.Query(ctx,
		"SELECT message, COUNT(*) AS cnt FROM chat_logs GROUP BY message ORDER BY cnt DESC LIMIT $1",
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []entities.QuestionCount
	for rows.Next() {
		var qc entities.QuestionCount
		if err := rows.Scan(&qc.Message, &qc.Count); err != nil {
			return nil, err
		}
		result = append(result, qc)
	}
	return result, rows.Err()
}
