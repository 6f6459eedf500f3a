package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/vinaysurtani/Trivia-API/data"
	repo "github.com/vinaysurtani/Trivia-API/repository"
)

// GetQuestion retrieves a question record.
func (r *repository) GetQuestion(questionID int64) (*data.Question, error) {
	if questionID < 1 {
		return nil, repo.ErrRecordNotFound
	}
	query := `
		SELECT id, question, answer, difficulty, category
		FROM questions
		WHERE id = $1`
	var question data.Question
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, questionID).Scan(
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
	query := `
		SELECT count(*) OVER(), id, question, answer, difficulty, category
		FROM questions
		ORDER BY id ASC
		LIMIT $1 OFFSET $2`
	args := []interface{}{filters.Limit(), filters.Offset()}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	defer rows.Close()
	totalRecords := 0
	questions := []*data.Question{}
	for rows.Next() {
		var question data.Question
		err := rows.Scan(
			&totalRecords,
			&question.ID,
			&question.Question,
			&question.Answer,
			&question.Difficulty,
			&question.Category,
		)
		if err != nil {
			return nil, data.Metadata{}, err
		}
		questions = append(questions, &question)
	}
	if err = rows.Err(); err != nil {
		return nil, data.Metadata{}, err
	}
	metadata := data.CalculateMetadata(totalRecords, filters.Page, filters.PageSize)
	return questions, metadata, nil
}

// GetAllQuestionsForCategory retrieves all question records for a specific
// category. A categoryID of zero selects every category.
func (r *repository) GetAllQuestionsForCategory(categoryID int64) ([]*data.Question, error) {
	query := `
		SELECT id, question, answer, difficulty, category
		FROM questions
		WHERE category = $1 OR $1 = 0
		ORDER BY id ASC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, categoryID)
	if err != nil {
		return nil, err
	}
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
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return questions, nil
}

// CreateQuestion inserts a new question record and sets its assigned id.
func (r *repository) CreateQuestion(question *data.Question) error {
	query := `
		INSERT INTO questions (question, answer, difficulty, category)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	args := []interface{}{question.Question, question.Answer, question.Difficulty, question.Category}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return r.db.QueryRowContext(ctx, query, args...).Scan(&question.ID)
}

// DeleteQuestion deletes a question record. Concurrent deletes of the same
// id race safely: the loser sees zero affected rows and reports not found.
func (r *repository) DeleteQuestion(questionID int64) error {
	if questionID < 1 {
		return repo.ErrRecordNotFound
	}
	query := `
		DELETE FROM questions
		WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, questionID)
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
	query := `
		SELECT id, question, answer, difficulty, category
		FROM questions
		WHERE question ILIKE '%' || $1 || '%'
		ORDER BY id ASC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, term)
	if err != nil {
		return nil, err
	}
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
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return questions, nil
}
