package infrastructure

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresClient struct {
	Pool *pgxpool.Pool
}

func NewPostgresClient(connString string) (*PostgresClient, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse connection string: %w", err)
	}

	// Pool configuration
	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour
	config.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	// Verify connection
	if err := pool.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	client := &PostgresClient{Pool: pool}

	if err := client.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return client, nil
}

// Migrate creates the schema if absent. Safe to call on every process start;
// there is no further migration strategy.
func (p *PostgresClient) Migrate() error {
	ctx := context.Background()

	_, err := p.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			phone TEXT NOT NULL,
			email TEXT,
			order_details TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			status TEXT DEFAULT 'new'
		);
	`)
	if err != nil {
		return fmt.Errorf("create orders table: %w", err)
	}

	_, err = p.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS chat_logs (
			id SERIAL PRIMARY KEY,
			user_id TEXT,
			message TEXT,
			response TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("create chat_logs table: %w", err)
	}

	_, err = p.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS knowledge_base (
			id SERIAL PRIMARY KEY,
			question TEXT UNIQUE NOT NULL,
			answer TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("create knowledge_base table: %w", err)
	}

	_, err = p.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username VARCHAR(50) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			role VARCHAR(20) DEFAULT 'user',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("create users table: %w", err)
	}

	return nil
}

func (p *PostgresClient) Close() {
	p.Pool.Close()
}
