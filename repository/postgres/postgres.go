// Package postgres implements the repository layer on top of a
// PostgreSQL database.
package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/vinaysurtani/Trivia-API/config"
	_ "github.com/lib/pq"
)

// OpenDB creates a PostgreSQL database connection pool.
func OpenDB(cfg config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		return nil, err
	}
	duration, err := time.ParseDuration(cfg.Database.MaxIdleTime)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxIdleTime(duration)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = db.PingContext(ctx)
	if err != nil {
		return nil, err
	}
	return db, nil
}

// Repository is the PostgreSQL-backed store access layer.
type repository struct {
	db *sql.DB
}

// New creates a new instance of the PostgreSQL repository.
func New(db *sql.DB) *repository {
	return &repository{db: db}
}
