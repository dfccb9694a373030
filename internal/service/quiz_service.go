package service

import (
	"context"
	"fmt"

	"github.com/Ykushvanth/quiz-backend/internal/quiz"
	"github.com/Ykushvanth/quiz-backend/internal/storage"
)

type QuizList struct {
	Quizzes []quiz.Quiz `json:"quizzes"`
}

type QuestionList struct {
	Questions []quiz.Question `json:"questions"`
}

type QuizService interface {
	ListQuizzes(ctx context.Context) (QuizList, error)

	// GetQuestions returns a quiz's questions with their options nested.
	// With a session id the order is the seeded permutation for
	// (sessionID + quizID); without one it is freshly random per call.
	GetQuestions(ctx context.Context, quizID int64, sessionID *int64) (QuestionList, error)
}

type quizService struct {
	qs storage.QuizStore
}

func NewQuizService(qs storage.QuizStore) QuizService {
	return &quizService{qs: qs}
}

func (s *quizService) ListQuizzes(ctx context.Context) (QuizList, error) {
	rows, err := s.qs.ListQuizzes(ctx)
	if err != nil {
		return QuizList{}, fmt.Errorf("list quizzes: %w", err)
	}

	quizzes := make([]quiz.Quiz, 0, len(rows))
	for _, r := range rows {
		quizzes = append(quizzes, quiz.Quiz{ID: r.ID, Title: r.Title})
	}
	return QuizList{Quizzes: quizzes}, nil
}

func (s *quizService) GetQuestions(ctx context.Context, quizID int64, sessionID *int64) (QuestionList, error) {
	rows, err := s.qs.GetQuestions(ctx, quizID)
	if err != nil {
		return QuestionList{}, fmt.Errorf("get questions: %w", err)
	}

	questions := make([]quiz.Question, 0, len(rows))
	ids := make([]int64, 0, len(rows))
	for _, r := range rows {
		questions = append(questions, quiz.Question{ID: r.ID, Text: r.Text, Options: []quiz.Option{}})
		ids = append(ids, r.ID)
	}

	if sessionID != nil {
		quiz.SortBySeed(questions, *sessionID+quizID)
	} else {
		quiz.Shuffle(questions)
	}

	if len(ids) > 0 {
		opts, err := s.qs.GetOptions(ctx, ids)
		if err != nil {
			return QuestionList{}, fmt.Errorf("get options: %w", err)
		}

		byQuestion := make(map[int64][]quiz.Option, len(ids))
		for _, o := range opts {
			byQuestion[o.QuestionID] = append(byQuestion[o.QuestionID], quiz.Option{ID: o.ID, Text: o.Text})
		}
		for i := range questions {
			if opts, ok := byQuestion[questions[i].ID]; ok {
				questions[i].Options = opts
			}
		}
	}

	return QuestionList{Questions: questions}, nil
}
