package interfaces

import "time"

// ModelTier selects the AI model used when the knowledge base has no answer.
type ModelTier string

const (
	// TierFast is the default model for free-form and topic questions.
	TierFast ModelTier = "fast"
	// TierEscalated is the higher-capability model used by /complex.
	TierEscalated ModelTier = "escalated"
)

// AIClient asks the generative-AI backend a single question.
type AIClient interface {
	Ask(question string, tier ModelTier) (string, error)
}

// Messenger delivers a message over the WhatsApp channel.
type Messenger interface {
	SendMessage(to, content string) error
}

// EmailSender delivers a message over SMTP.
type EmailSender interface {
	SendEmail(to, subject, body string) error
}

// JobScheduler runs background jobs: one-off delayed tasks and fixed-interval
// tasks. Scheduled jobs live in memory only and are lost on restart.
type JobScheduler interface {
	RunAfter(delay time.Duration, task func()) error
	RunEvery(interval time.Duration, task func()) error
}
