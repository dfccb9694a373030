package storage

import "context"

type QuizRow struct {
	ID    int64
	Title string
}

type QuestionRow struct {
	ID   int64
	Text string
}

type OptionRow struct {
	ID         int64
	QuestionID int64
	Text       string
}

// CorrectOptionRow is the option flagged is_correct for a question. The
// schema is expected to hold at most one per question; the store does not
// enforce that.
type CorrectOptionRow struct {
	QuestionID int64
	OptionID   int64
	Text       string
}

// QuizStore is the read-only view of the quiz tables. Implementations must
// bind every identifier as a query parameter.
type QuizStore interface {
	ListQuizzes(ctx context.Context) ([]QuizRow, error)

	// GetQuestions returns a quiz's questions ordered by id. An unknown
	// quiz id yields an empty slice, not an error.
	GetQuestions(ctx context.Context, quizID int64) ([]QuestionRow, error)

	// GetOptions returns the options of the given questions ordered by
	// option id.
	GetOptions(ctx context.Context, questionIDs []int64) ([]OptionRow, error)

	// GetCorrectOptions returns the is_correct option of each given
	// question, ordered by question id.
	GetCorrectOptions(ctx context.Context, questionIDs []int64) ([]CorrectOptionRow, error)
}
