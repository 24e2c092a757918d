package usecases

import (
	"context"
	"fmt"
	"time"

	"agrobot/internal/entities"
	"agrobot/internal/interfaces"

	"github.com/rs/zerolog"
)

// OrderStore is the persistence contract required by OrderService.
type OrderStore interface {
	Insert(ctx context.Context, name, phone, email, orderDetails, status string) (int, error)
}

// OrderRequest carries the already-validated fields of an incoming order.
type OrderRequest struct {
	Name         string
	Phone        string
	Email        string // optional
	OrderDetails string
}

// OrderService implements order intake: persist, confirm to the customer,
// notify the manager, and schedule the follow-up reminder. Notifications and
// scheduling are best-effort; once the order row is written nothing rolls it
// back.
type OrderService struct {
	Store         OrderStore
	Notifier      *Notifier
	Scheduler     interfaces.JobScheduler
	ManagerEmail  string
	ReminderDelay time.Duration
	Log           zerolog.Logger
}

func NewOrderService(store OrderStore, notifier *Notifier, scheduler interfaces.JobScheduler, managerEmail string, reminderDelay time.Duration, log zerolog.Logger) *OrderService {
	return &OrderService{
		Store:         store,
		Notifier:      notifier,
		Scheduler:     scheduler,
		ManagerEmail:  managerEmail,
		ReminderDelay: reminderDelay,
		Log:           log.With().Str("component", "orders").Logger(),
	}
}

// Place persists the order and fires the confirmation side effects. It fails
// only when the insert fails; everything after the insert is best-effort.
func (s *OrderService) Place(ctx context.Context, req OrderRequest) (int, error) {
	orderID, err := s.Store.Insert(ctx, req.Name, req.Phone, req.Email, req.OrderDetails, entities.OrderStatusNew)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}

	s.Notifier.SendMessage(req.Phone, fmt.Sprintf(
		"Спасибо, %s! Ваш заказ получен. Детали заказа: %s. Мы скоро свяжемся с вами.",
		req.Name, req.OrderDetails))

	if req.Email != "" {
		s.Notifier.SendEmail(req.Email, "Подтверждение заказа", fmt.Sprintf(
			"Здравствуйте, %s!\n\nВаш заказ: %s успешно принят.", req.Name, req.OrderDetails))
	}

	s.Notifier.SendEmail(s.ManagerEmail, "Новая заявка", fmt.Sprintf(
		"Новая заявка от %s.\nТелефон: %s\nEmail: %s\nЗаказ: %s",
		req.Name, req.Phone, req.Email, req.OrderDetails))

	phone, name, details := req.Phone, req.Name, req.OrderDetails
	if err := s.Scheduler.RunAfter(s.ReminderDelay, func() {
		s.SendReminder(phone, name, details)
	}); err != nil {
		s.Log.Error().Err(err).Int("order_id", orderID).Msg("failed to schedule reminder")
	}

	s.Log.Info().Int("order_id", orderID).Str("phone", req.Phone).Msg("order accepted")
	return orderID, nil
}

// SendReminder nudges a customer whose order has not been confirmed within
// the reminder window.
func (s *OrderService) SendReminder(phone, name, orderDetails string) {
	s.Notifier.SendMessage(phone, fmt.Sprintf(
		"Здравствуйте, %s. Напоминаем, что ваш заказ (%s) ожидает подтверждения. Свяжитесь с нами для завершения заказа.",
		name, orderDetails))
}
