package postgres

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
	query := `
		SELECT id, type
		FROM categories
		WHERE id = $1`
	var category data.Category
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, categoryID).Scan(
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
	query := `
		SELECT id, type
		FROM categories
		ORDER BY id ASC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	categories := []*data.Category{}
	for rows.Next() {
		var category data.Category
		err := rows.Scan(
			&category.ID,
			&category.Type,
		)
		if err != nil {
			return nil, err
		}
		categories = append(categories, &category)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return categories, nil
}
