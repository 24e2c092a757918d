package entities

import "time"

// ChatLogEntry is an append-only record of one chat exchange. The response is
// stored even when it is an error fallback string.
type ChatLogEntry struct {
	ID        int       `json:"id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}

// KnowledgeEntry is a question/answer pair consulted by exact match before
// falling back to the AI backend.
type KnowledgeEntry struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// QuestionCount is one row of the "most frequent questions" report.
type QuestionCount struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}
