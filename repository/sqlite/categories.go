package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/vinaysurtani/Trivia-API/data"
	repo "github.com/vinaysurtani/Trivia-API/repository"
)

// GetCategory retrieves a category record.
func (r *repository) GetCategory(categoryID int64) (*data.Category, error) {
	if categoryID < 1 {
		return nil, repo.ErrRecordNotFound
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	var category data.Category
	err := r.db.QueryRowContext(ctx,
		`SELECT id, type FROM categories WHERE id = ?`, categoryID).Scan(
		&category.ID,
		&category.Type,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, repo.ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &category, nil
}

// GetAllCategories retrieves all category records.
func (r *repository) GetAllCategories() ([]*data.Category, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, type FROM categories ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	categories := []*data.Category{}
	for rows.Next() {
		var category data.Category
		if err := rows.Scan(&category.ID, &category.Type); err != nil {
			return nil, err
		}
		categories = append(categories, &category)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory inserts a category record. The HTTP API never creates
// categories; this exists for seeding an embedded store.
func (r *repository) CreateCategory(category *data.Category) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (type) VALUES (?)`, category.Type)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	category.ID = id
	return nil
}
