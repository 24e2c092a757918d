package infrastructure

import (
	"context"
	"errors"
	"strings"
	"time"

	"agrobot/internal/interfaces"

	openai "github.com/sashabaranov/go-openai"
)

// systemPrompt constrains the domain and tone of every AI answer.
const systemPrompt = "Ты бот, который отвечает на вопросы по клубнике кратко и по делу."

// OpenAIClient answers questions through the chat-completions API. The fast
// model serves regular questions, the escalated model serves /complex
// consultations.
type OpenAIClient struct {
	client         *openai.Client
	fastModel      string
	escalatedModel string
	timeout        time.Duration
}

func NewOpenAIClient(apiKey, fastModel, escalatedModel string) *OpenAIClient {
	return &OpenAIClient{
		client:         openai.NewClient(apiKey),
		fastModel:      fastModel,
		escalatedModel: escalatedModel,
		timeout:        60 * time.Second,
	}
}

func (c *OpenAIClient) Ask(question string, tier interfaces.ModelTier) (string, error) {
	model := c.fastModel
	if tier == interfaces.TierEscalated {
		model = c.escalatedModel
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Temperature: 0.7,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: question},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
