package storage

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresQuizStore struct {
	db *pgxpool.Pool
}

func NewPostgresQuizStore(db *pgxpool.Pool) *PostgresQuizStore {
	return &PostgresQuizStore{db: db}
}

func (s *PostgresQuizStore) ListQuizzes(ctx context.Context) ([]QuizRow, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, title
		FROM quizzes
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]QuizRow, 0)
	for rows.Next() {
		var r QuizRow
		if err := rows.Scan(&r.ID, &r.Title); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *PostgresQuizStore) GetQuestions(ctx context.Context, quizID int64) ([]QuestionRow, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, question_text
		FROM questions
		WHERE quiz_id = $1
		ORDER BY id
	`, quizID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]QuestionRow, 0)
	for rows.Next() {
		var r QuestionRow
		if err := rows.Scan(&r.ID, &r.Text); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *PostgresQuizStore) GetOptions(ctx context.Context, questionIDs []int64) ([]OptionRow, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, question_id, option_text
		FROM options
		WHERE question_id = ANY($1)
		ORDER BY id
	`, questionIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]OptionRow, 0)
	for rows.Next() {
		var r OptionRow
		if err := rows.Scan(&r.ID, &r.QuestionID, &r.Text); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *PostgresQuizStore) GetCorrectOptions(ctx context.Context, questionIDs []int64) ([]CorrectOptionRow, error) {
	rows, err := s.db.Query(ctx, `
		SELECT question_id, id, option_text
		FROM options
		WHERE question_id = ANY($1) AND is_correct
		ORDER BY question_id
	`, questionIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CorrectOptionRow, 0)
	for rows.Next() {
		var r CorrectOptionRow
		if err := rows.Scan(&r.QuestionID, &r.OptionID, &r.Text); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
