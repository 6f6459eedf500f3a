package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/vinaysurtani/Trivia-API/data"
	repo "github.com/vinaysurtani/Trivia-API/repository"
)

func scanQuestions(rows *sql.Rows) ([]*data.Question, error) {
	defer rows.Close()
	questions := []*data.Question{}
	for rows.Next() {
		var question data.Question
		err := rows.Scan(
			&question.ID,
			&question.Question,
			&question.Answer,
			&question.Difficulty,
			&question.Category,
		)
		if err != nil {
			return nil, err
		}
		questions = append(questions, &question)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return questions, nil
}

// GetQuestion retrieves a question record.
func (r *repository) GetQuestion(questionID int64) (*data.Question, error) {
	if questionID < 1 {
		return nil, repo.ErrRecordNotFound
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	var question data.Question
	err := r.db.QueryRowContext(ctx,
		`SELECT id, question, answer, difficulty, category FROM questions WHERE id = ?`,
		questionID).Scan(
		&question.ID,
		&question.Question,
		&question.Answer,
		&question.Difficulty,
		&question.Category,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, repo.ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &question, nil
}

// GetAllQuestions retrieves a paginated record of all questions in
// ascending id order, along with the total count across all pages.
func (r *repository) GetAllQuestions(filters data.Filters) ([]*data.Question, data.Metadata, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	var totalRecords int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM questions`).Scan(&totalRecords)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, question, answer, difficulty, category
		 FROM questions ORDER BY id ASC LIMIT ? OFFSET ?`,
		filters.Limit(), filters.Offset())
	if err != nil {
		return nil, data.Metadata{}, err
	}
	questions, err := scanQuestions(rows)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	metadata := data.CalculateMetadata(totalRecords, filters.Page, filters.PageSize)
	return questions, metadata, nil
}

// GetAllQuestionsForCategory retrieves all question records for a specific
// category. A categoryID of zero selects every category.
func (r *repository) GetAllQuestionsForCategory(categoryID int64) ([]*data.Question, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, question, answer, difficulty, category
		 FROM questions WHERE category = ? OR ? = 0 ORDER BY id ASC`,
		categoryID, categoryID)
	if err != nil {
		return nil, err
	}
	return scanQuestions(rows)
}

// CreateQuestion inserts a new question record and sets its assigned id.
func (r *repository) CreateQuestion(question *data.Question) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO questions (question, answer, difficulty, category) VALUES (?, ?, ?, ?)`,
		question.Question, question.Answer, question.Difficulty, question.Category)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	question.ID = id
	return nil
}

// DeleteQuestion deletes a question record.
func (r *repository) DeleteQuestion(questionID int64) error {
	if questionID < 1 {
		return repo.ErrRecordNotFound
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, `DELETE FROM questions WHERE id = ?`, questionID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repo.ErrRecordNotFound
	}
	return nil
}

// SearchQuestions retrieves all question records whose question text
// contains the term, matched case-insensitively.
func (r *repository) SearchQuestions(term string) ([]*data.Question, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, question, answer, difficulty, category
		 FROM questions WHERE instr(lower(question), lower(?)) > 0 ORDER BY id ASC`,
		term)
	if err != nil {
		return nil, err
	}
	return scanQuestions(rows)
}
