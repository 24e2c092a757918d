package entities

import "time"

// OrderStatusNew is the status assigned to every freshly accepted order.
// Orders are never updated or deleted by the bot itself.
const OrderStatusNew = "new"

type Order struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email,omitempty"`
	OrderDetails string    `json:"order_details"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
