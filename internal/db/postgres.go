package db

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ConnectPostgres opens the pool backing the ingredient knowledge base.
// Unlike a mandatory store, the knowledge base is optional here, so a
// missing DATABASE_URL is an error the caller downgrades to "retrieval
// disabled" instead of exiting.
func ConnectPostgres(ctx context.Context) (*pgxpool.Pool, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, errors.New("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if err := initSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	log.Println("connected to Postgres")
	return pool, nil
}

func initSchema(ctx context.Context, pool *pgxpool.Pool) error {
	factsSQL := `
		CREATE TABLE IF NOT EXISTS ingredient_facts (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) UNIQUE NOT NULL,
			fact TEXT NOT NULL,
			is_vegetarian BOOLEAN NOT NULL,
			embedding FLOAT4[],
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	_, err := pool.Exec(ctx, factsSQL)
	return err
}
