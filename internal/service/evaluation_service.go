package service

import (
	"context"
	"fmt"

	"github.com/Ykushvanth/quiz-backend/internal/quiz"
	"github.com/Ykushvanth/quiz-backend/internal/storage"
)

type QuestionResult struct {
	QuestionID        int64   `json:"question_id"`
	QuestionText      string  `json:"question_text"`
	UserAnswer        *int64  `json:"user_answer"`
	CorrectAnswer     *int64  `json:"correct_answer"`
	CorrectAnswerText *string `json:"correct_answer_text"`
	IsCorrect         bool    `json:"is_correct"`
}

type Evaluation struct {
	QuizID         int64            `json:"quiz_id"`
	TotalQuestions int              `json:"total_questions"`
	CorrectAnswers int              `json:"correct_answers"`
	WrongAnswers   int              `json:"wrong_answers"`
	Score          int              `json:"score"`
	Results        []QuestionResult `json:"results"`
}

type EvaluationService interface {
	// Evaluate scores a question-id to option-id submission against the
	// stored correct options. A nil answers map fails with
	// quiz.ErrInvalidAnswers before any store access.
	Evaluate(ctx context.Context, quizID int64, answers map[int64]int64) (Evaluation, error)
}

type evaluationService struct {
	qs storage.QuizStore
}

func NewEvaluationService(qs storage.QuizStore) EvaluationService {
	return &evaluationService{qs: qs}
}

func (s *evaluationService) Evaluate(ctx context.Context, quizID int64, answers map[int64]int64) (Evaluation, error) {
	if answers == nil {
		return Evaluation{}, quiz.ErrInvalidAnswers
	}

	questions, err := s.qs.GetQuestions(ctx, quizID)
	if err != nil {
		return Evaluation{}, fmt.Errorf("get questions: %w", err)
	}

	correctByQuestion := make(map[int64]storage.CorrectOptionRow, len(questions))
	if len(questions) > 0 {
		ids := make([]int64, 0, len(questions))
		for _, q := range questions {
			ids = append(ids, q.ID)
		}

		correct, err := s.qs.GetCorrectOptions(ctx, ids)
		if err != nil {
			return Evaluation{}, fmt.Errorf("get correct options: %w", err)
		}
		for _, c := range correct {
			correctByQuestion[c.QuestionID] = c
		}
	}

	results := make([]QuestionResult, 0, len(questions))
	correctCount := 0
	for _, q := range questions {
		res := QuestionResult{
			QuestionID:   q.ID,
			QuestionText: q.Text,
		}

		// An answer of 0 counts as unanswered, same as a missing key.
		if ans, ok := answers[q.ID]; ok && ans != 0 {
			res.UserAnswer = &ans
		}
		if c, ok := correctByQuestion[q.ID]; ok {
			res.CorrectAnswer = &c.OptionID
			res.CorrectAnswerText = &c.Text
		}
		if res.UserAnswer != nil && res.CorrectAnswer != nil && *res.UserAnswer == *res.CorrectAnswer {
			res.IsCorrect = true
			correctCount++
		}

		results = append(results, res)
	}

	total := len(results)
	return Evaluation{
		QuizID:         quizID,
		TotalQuestions: total,
		CorrectAnswers: correctCount,
		WrongAnswers:   total - correctCount,
		Score:          quiz.Score(correctCount, total),
		Results:        results,
	}, nil
}
