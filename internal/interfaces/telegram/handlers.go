package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"agrobot/internal/interfaces"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	welcomeText      = "Привет! Я бот автоматизации бизнеса. Задавайте вопросы по клубнике."
	offTopicText     = "Ваш вопрос не относится к теме клубники или фермерства."
	tipSuffix        = "\n\nСовет: регулярно проверяйте состояние растений!"
	questionUsage    = "Пожалуйста, задайте вопрос после команды /question."
	checklistUsage   = "Укажите тему для чек-листа, например: /checklist теплица"
	complexUsage     = "Пожалуйста, укажите вопрос после команды /complex"
	checklistMissing = "Чек-лист не найден для указанной темы."
	reportHeader     = "Ежедневный отчёт по вопросам:\n"
)

func (r *Router) handleStart(msg *tgbotapi.Message) {
	r.reply(msg, welcomeText)
}

// handlePrivateMessage answers free-form text in a private chat at the fast
// tier and logs the exchange keyed by the individual user.
func (r *Router) handlePrivateMessage(ctx context.Context, msg *tgbotapi.Message) {
	question := msg.Text
	userID := strconv.FormatInt(msg.From.ID, 10)

	answer, _ := r.Engine.Answer(ctx, question, interfaces.TierFast)
	r.reply(msg, answer)
	r.logChat(ctx, userID, question, answer)
}

// handleGroupQuestion serves /question. The question must mention one of the
// configured topic keywords; otherwise the engine is not consulted and
// nothing is logged. The log is keyed by the originating chat, not the user.
func (r *Router) handleGroupQuestion(ctx context.Context, msg *tgbotapi.Message) {
	question := strings.TrimSpace(msg.CommandArguments())
	if question == "" {
		r.reply(msg, questionUsage)
		return
	}

	if !r.matchesTopic(question) {
		r.reply(msg, offTopicText)
		return
	}

	answer, _ := r.Engine.Answer(ctx, question, interfaces.TierFast)
	replyText := answer + tipSuffix
	r.reply(msg, replyText)
	r.logChat(ctx, strconv.FormatInt(msg.Chat.ID, 10), question, replyText)
}

// handleChecklist serves /checklist from the static catalogue. No AI call,
// no chat log.
func (r *Router) handleChecklist(msg *tgbotapi.Message) {
	topic := strings.TrimSpace(msg.CommandArguments())
	if topic == "" {
		r.reply(msg, checklistUsage)
		return
	}

	checklist, ok := r.Checklists[strings.ToLower(topic)]
	if !ok {
		r.reply(msg, checklistMissing)
		return
	}
	r.reply(msg, checklist)
}

// handleReport serves /report: the top-5 most frequent exact chat messages.
func (r *Router) handleReport(ctx context.Context, msg *tgbotapi.Message) {
	top, err := r.ChatLogs.TopQuestions(ctx, 5)
	if err != nil {
		r.Log.Error().Err(err).Msg("report query failed")
		r.reply(msg, reportHeader)
		return
	}

	var sb strings.Builder
	sb.WriteString(reportHeader)
	for _, qc := range top {
		sb.WriteString(fmt.Sprintf("%s: %d раз(а)\n", qc.Message, qc.Count))
	}
	r.reply(msg, sb.String())
}

// handleComplex serves /complex at the escalated tier. The knowledge-base
// short-circuit still applies; escalation only changes the fallback model.
func (r *Router) handleComplex(ctx context.Context, msg *tgbotapi.Message) {
	question := strings.TrimSpace(msg.CommandArguments())
	if question == "" {
		r.reply(msg, complexUsage)
		return
	}

	userID := strconv.FormatInt(msg.From.ID, 10)
	answer, _ := r.Engine.Answer(ctx, question, interfaces.TierEscalated)
	r.reply(msg, answer)
	r.logChat(ctx, userID, question, answer)
}

// matchesTopic reports whether the question mentions any configured keyword,
// case-insensitively.
func (r *Router) matchesTopic(question string) bool {
	lower := strings.ToLower(question)
	for _, kw := range r.Keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
