package usecases

import (
	"agrobot/internal/interfaces"

	"github.com/rs/zerolog"
)

// RecipientLimiter throttles outbound sends per recipient.
type RecipientLimiter interface {
	Allow(recipient string) bool
}

// Notifier fans order events out to the messaging and email channels.
// Delivery is best-effort on both: a failure is logged and swallowed, callers
// never observe it. There is no retry and no dead-letter.
type Notifier struct {
	Messenger interfaces.Messenger
	Email     interfaces.EmailSender
	Limiter   RecipientLimiter
	Log       zerolog.Logger
}

func NewNotifier(messenger interfaces.Messenger, email interfaces.EmailSender, limiter RecipientLimiter, log zerolog.Logger) *Notifier {
	return &Notifier{
		Messenger: messenger,
		Email:     email,
		Limiter:   limiter,
		Log:       log.With().Str("component", "notifier").Logger(),
	}
}

// SendMessage delivers body to the recipient over the messaging channel.
func (n *Notifier) SendMessage(to, body string) {
	if n.Messenger == nil {
		n.Log.Warn().Str("to", to).Msg("messaging channel not configured, message dropped")
		return
	}
	if n.Limiter != nil && !n.Limiter.Allow(to) {
		n.Log.Warn().Str("to", to).Msg("outbound rate limit hit, message dropped")
		return
	}
	if err := n.Messenger.SendMessage(to, body); err != nil {
		n.Log.Error().Err(err).Str("to", to).Msg("whatsapp send failed")
	}
}

// SendEmail delivers a plain-text mail to the recipient.
func (n *Notifier) SendEmail(to, subject, body string) {
	if n.Email == nil {
		n.Log.Warn().Str("to", to).Msg("email channel not configured, mail dropped")
		return
	}
	if err := n.Email.SendEmail(to, subject, body); err != nil {
		n.Log.Error().Err(err).Str("to", to).Msg("email send failed")
	}
}
