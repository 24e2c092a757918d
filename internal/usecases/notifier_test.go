package usecases

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type fakeMessenger struct {
	err  error
	sent []struct{ to, body string }
}

func (f *fakeMessenger) SendMessage(to, content string) error {
	f.sent = append(f.sent, struct{ to, body string }{to, content})
	return f.err
}

type fakeEmailer struct {
	err  error
	sent []struct{ to, subject, body string }
}

func (f *fakeEmailer) SendEmail(to, subject, body string) error {
	f.sent = append(f.sent, struct{ to, subject, body string }{to, subject, body})
	return f.err
}

type denyLimiter struct{}

func (denyLimiter) Allow(string) bool { return false }

func TestNotifier_SendsBothChannels(t *testing.T) {
	m := &fakeMessenger{}
	e := &fakeEmailer{}
	n := NewNotifier(m, e, nil, zerolog.Nop())

	n.SendMessage("+12345678", "привет")
	n.SendEmail("ann@example.com", "тема", "тело")

	assert.Len(t, m.sent, 1)
	assert.Equal(t, "+12345678", m.sent[0].to)
	assert.Len(t, e.sent, 1)
	assert.Equal(t, "тема", e.sent[0].subject)
}

func TestNotifier_SwallowsChannelFailures(t *testing.T) {
	m := &fakeMessenger{err: errors.New("twilio down")}
	e := &fakeEmailer{err: errors.New("smtp down")}
	n := NewNotifier(m, e, nil, zerolog.Nop())

	// Must not panic and must not propagate anything.
	n.SendMessage("+12345678", "привет")
	n.SendEmail("ann@example.com", "тема", "тело")

	assert.Len(t, m.sent, 1)
	assert.Len(t, e.sent, 1)
}

func TestNotifier_NilChannelsDropQuietly(t *testing.T) {
	n := NewNotifier(nil, nil, nil, zerolog.Nop())
	n.SendMessage("+12345678", "привет")
	n.SendEmail("ann@example.com", "тема", "тело")
}

func TestNotifier_RateLimitedSendIsDropped(t *testing.T) {
	m := &fakeMessenger{}
	n := NewNotifier(m, nil, denyLimiter{}, zerolog.Nop())

	n.SendMessage("+12345678", "привет")

	assert.Empty(t, m.sent)
}
