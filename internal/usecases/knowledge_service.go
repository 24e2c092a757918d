package usecases

import (
	"context"

	"agrobot/internal/interfaces"

	"github.com/rs/zerolog"
)

// AnswerSource reports which branch produced an answer.
type AnswerSource string

const (
	SourceKnowledgeBase AnswerSource = "knowledge_base"
	SourceAI            AnswerSource = "ai"
	SourceFallback      AnswerSource = "fallback_error"
)

// FallbackAnswer is returned when the AI backend fails for any reason.
const FallbackAnswer = "Извините, произошла ошибка при обработке запроса."

// KnowledgeLookup is the read side of the knowledge base.
type KnowledgeLookup interface {
	Lookup(ctx context.Context, question string) (answer string, found bool, err error)
}

// KnowledgeService answers questions: exact knowledge-base match first, then
// the generative-AI backend at the requested tier. It never returns an error;
// a backend failure degrades to a fixed apology string. Writing the paired
// chat-log entry is the caller's responsibility on every branch.
type KnowledgeService struct {
	KB  KnowledgeLookup
	AI  interfaces.AIClient
	Log zerolog.Logger
}

func NewKnowledgeService(kb KnowledgeLookup, ai interfaces.AIClient, log zerolog.Logger) *KnowledgeService {
	return &KnowledgeService{
		KB:  kb,
		AI:  ai,
		Log: log.With().Str("component", "knowledge").Logger(),
	}
}

// Answer resolves a question to a reply text and its source.
func (s *KnowledgeService) Answer(ctx context.Context, question string, tier interfaces.ModelTier) (string, AnswerSource) {
	answer, found, err := s.KB.Lookup(ctx, question)
	if err != nil {
		// A lookup failure is treated as a miss so the AI can still answer.
		s.Log.Error().Err(err).Msg("knowledge base lookup failed")
	}
	if found {
		return answer, SourceKnowledgeBase
	}

	if s.AI == nil {
		s.Log.Warn().Msg("ai backend not configured")
		return FallbackAnswer, SourceFallback
	}

	response, err := s.AI.Ask(question, tier)
	if err != nil {
		s.Log.Error().Err(err).Str("tier", string(tier)).Msg("ai request failed")
		return FallbackAnswer, SourceFallback
	}
	return response, SourceAI
}
