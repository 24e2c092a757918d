package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"agrobot/internal/usecases"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ----- Fakes -----

type fakeOrderStore struct {
	nextID  int
	inserts int
	status  string
}

func (f *fakeOrderStore) Insert(ctx context.Context, name, phone, email, orderDetails, status string) (int, error) {
	f.inserts++
	f.status = status
	return f.nextID, nil
}

type fakeMessenger struct {
	sent []struct{ to, body string }
}

func (f *fakeMessenger) SendMessage(to, content string) error {
	f.sent = append(f.sent, struct{ to, body string }{to, content})
	return nil
}

type fakeEmailer struct {
	sent []struct{ to, subject, body string }
}

func (f *fakeEmailer) SendEmail(to, subject, body string) error {
	f.sent = append(f.sent, struct{ to, subject, body string }{to, subject, body})
	return nil
}

type fakeScheduler struct {
	delay time.Duration
	calls int
}

func (f *fakeScheduler) RunAfter(delay time.Duration, task func()) error {
	f.calls++
	f.delay = delay
	return nil
}

func (f *fakeScheduler) RunEvery(interval time.Duration, task func()) error { return nil }

type orderEnv struct {
	router *gin.Engine
	store  *fakeOrderStore
	msgr   *fakeMessenger
	email  *fakeEmailer
	sched  *fakeScheduler
}

func newOrderEnv(t *testing.T) *orderEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &orderEnv{
		store: &fakeOrderStore{nextID: 42},
		msgr:  &fakeMessenger{},
		email: &fakeEmailer{},
		sched: &fakeScheduler{},
	}
	notifier := usecases.NewNotifier(env.msgr, env.email, nil, zerolog.Nop())
	svc := usecases.NewOrderService(env.store, notifier, env.sched, "manager@farm.ru", 24*time.Hour, zerolog.Nop())

	env.router = gin.New()
	env.router.POST("/order", NewHandler(svc).HandleOrder)
	return env
}

func postOrder(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/order", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ----- Tests -----

func TestHandleOrder_Success(t *testing.T) {
	env := newOrderEnv(t)

	w := postOrder(env.router, `{"name":"Ann","phone":"+12345678","order_details":"5kg"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Заявка получена", resp["status"])
	assert.Equal(t, float64(42), resp["order_id"])

	assert.Equal(t, 1, env.store.inserts)
	assert.Equal(t, "new", env.store.status)

	require.Len(t, env.msgr.sent, 1)
	assert.Equal(t, "+12345678", env.msgr.sent[0].to)

	// No customer email given: only the manager mail.
	require.Len(t, env.email.sent, 1)
	assert.Equal(t, "manager@farm.ru", env.email.sent[0].to)

	assert.Equal(t, 1, env.sched.calls)
	assert.Equal(t, 24*time.Hour, env.sched.delay)
}

func TestHandleOrder_MissingPhone(t *testing.T) {
	env := newOrderEnv(t)

	w := postOrder(env.router, `{"name":"Ann","order_details":"5kg"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Отсутствуют обязательные поля")
	assert.Zero(t, env.store.inserts)
	assert.Empty(t, env.msgr.sent)
	assert.Empty(t, env.email.sent)
}

func TestHandleOrder_BadPhone(t *testing.T) {
	env := newOrderEnv(t)

	w := postOrder(env.router, `{"name":"Ann","phone":"abc","order_details":"5kg"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Неверный формат телефона")
	assert.Zero(t, env.store.inserts)
}

func TestHandleOrder_BadEmail(t *testing.T) {
	env := newOrderEnv(t)

	w := postOrder(env.router, `{"name":"Ann","phone":"+12345678","email":"nope","order_details":"5kg"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Неверный формат email")
	assert.Zero(t, env.store.inserts)
}

func TestHandleOrder_WithEmailSendsCustomerMail(t *testing.T) {
	env := newOrderEnv(t)

	w := postOrder(env.router, `{"name":"Ann","phone":"+12345678","email":"ann@example.com","order_details":"5kg"}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, env.email.sent, 2)
	assert.Equal(t, "ann@example.com", env.email.sent[0].to)
	assert.Equal(t, "Подтверждение заказа", env.email.sent[0].subject)
}

func TestHandleOrder_MalformedJSON(t *testing.T) {
	env := newOrderEnv(t)

	w := postOrder(env.router, `{not json`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, env.store.inserts)
}
