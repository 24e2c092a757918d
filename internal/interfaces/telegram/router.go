// Package telegram implements the chat-interface entry point: a polling
// listener with an explicit lifecycle and a closed command dispatch over the
// bot's command set.
package telegram

import (
	"context"
	"sync"

	"agrobot/internal/entities"
	"agrobot/internal/interfaces"
	"agrobot/internal/usecases"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// Sender is the outbound half of the Bot API used by the router.
// *tgbotapi.BotAPI satisfies it.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Answerer resolves a question through the knowledge engine.
type Answerer interface {
	Answer(ctx context.Context, question string, tier interfaces.ModelTier) (string, usecases.AnswerSource)
}

// ChatLogStore records chat exchanges and serves the /report query.
type ChatLogStore interface {
	Insert(ctx context.Context, userID, message, response string) error
	TopQuestions(ctx context.Context, limit int) ([]entities.QuestionCount, error)
}

// Router dispatches Telegram updates to command handlers.
type Router struct {
	Bot        *tgbotapi.BotAPI
	Sender     Sender
	Engine     Answerer
	ChatLogs   ChatLogStore
	Keywords   []string          // /question topic filter, matched case-insensitively
	Checklists map[string]string // /checklist topic -> text
	Log        zerolog.Logger

	stopChan chan struct{}
	done     chan struct{}
	mu       sync.Mutex
	running  bool
}

func NewRouter(bot *tgbotapi.BotAPI, engine Answerer, chatLogs ChatLogStore, keywords []string, checklists map[string]string, log zerolog.Logger) *Router {
	return &Router{
		Bot:        bot,
		Sender:     bot,
		Engine:     engine,
		ChatLogs:   chatLogs,
		Keywords:   keywords,
		Checklists: checklists,
		Log:        log.With().Str("component", "telegram").Logger(),
	}
}

// Start begins polling for updates in a background goroutine.
func (r *Router) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return
	}
	r.running = true
	r.stopChan = make(chan struct{})
	r.done = make(chan struct{})

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := r.Bot.GetUpdatesChan(u)

	r.Log.Info().Str("bot", r.Bot.Self.UserName).Msg("started polling")

	go func() {
		defer close(r.done)
		for {
			select {
			case <-r.stopChan:
				return
			case update, ok := <-updates:
				if !ok {
					return
				}
				r.HandleUpdate(context.Background(), update)
			}
		}
	}()
}

// Stop halts polling and waits for the listener goroutine to exit.
func (r *Router) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.running {
		return
	}
	r.running = false
	close(r.stopChan)
	r.Bot.StopReceivingUpdates()
	<-r.done
	r.Log.Info().Msg("stopped polling")
}

// HandleUpdate routes one update. Commands form a closed set; any private
// non-command text is treated as a free-form question.
func (r *Router) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil {
		return
	}

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			r.handleStart(msg)
		case "question":
			r.handleGroupQuestion(ctx, msg)
		case "checklist":
			r.handleChecklist(msg)
		case "report":
			r.handleReport(ctx, msg)
		case "complex":
			r.handleComplex(ctx, msg)
		}
		return
	}

	if msg.Chat.IsPrivate() && msg.Text != "" {
		r.handlePrivateMessage(ctx, msg)
	}
}

// reply sends text back to the originating chat.
func (r *Router) reply(msg *tgbotapi.Message, text string) {
	if _, err := r.Sender.Send(tgbotapi.NewMessage(msg.Chat.ID, text)); err != nil {
		r.Log.Error().Err(err).Int64("chat_id", msg.Chat.ID).Msg("reply failed")
	}
}

// logChat appends a message/response pair; a store failure is logged, never
// propagated to the chat flow.
func (r *Router) logChat(ctx context.Context, userID, message, response string) {
	if err := r.ChatLogs.Insert(ctx, userID, message, response); err != nil {
		r.Log.Error().Err(err).Msg("chat log write failed")
	}
}
