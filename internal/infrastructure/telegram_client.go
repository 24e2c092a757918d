package infrastructure

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramClient wraps the Bot API connection shared by the command router
// and the outbound reply path.
type TelegramClient struct {
	Bot *tgbotapi.BotAPI
}

func NewTelegramClient(token string) (*TelegramClient, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram connect: %w", err)
	}
	return &TelegramClient{Bot: bot}, nil
}
