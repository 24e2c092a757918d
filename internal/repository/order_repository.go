package repository

import (
	"context"

	"agrobot/internal/entities"

	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: db}
}

// Insert stores a new order and returns the store-assigned id.
func (r *OrderRepository) Insert(ctx context.Context, name, phone, email, orderDetails, status string) (int, error) {
	var id int
	err := r.db.QueryRow(ctx,
		"INSERT INTO orders (name, phone, email, order_details, status) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		name, phone, email, orderDetails, status).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// List returns the most recent orders, newest first.
func (r *OrderRepository) List(ctx context.Context, limit int) ([]entities.Order, error) {
	rows, err := r.db.Query(ctx,
		"SELECT id, name, phone, COALESCE(email, ''), order_details, status, created_at FROM orders ORDER BY created_at DESC LIMIT $1",
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []entities.Order
	for rows.Next() {
		var o entities.Order
		if err := rows.Scan(&o.ID, &o.Name, &o.Phone, &o.Email, &o.OrderDetails, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
