package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Ykushvanth/quiz-backend/internal/quiz"
	"github.com/Ykushvanth/quiz-backend/internal/service"
	"go.uber.org/zap"
)

type evaluateReq struct {
	Answers map[int64]int64 `json:"answers"`
}

func RegisterHandlers(mux *http.ServeMux, quizzes service.QuizService, evals service.EvaluationService, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}

	mux.HandleFunc("/api/quizzes", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			log.Warn("method not allowed", zap.String("path", r.URL.Path), zap.String("method", r.Method))
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		list, err := quizzes.ListQuizzes(ctx)
		if err != nil {
			log.Error("list quizzes failed", zap.Error(err))
			http.Error(w, "Failed to load quizzes", http.StatusInternalServerError)
			return
		}

		log.Info("quizzes listed", zap.Int("count", len(list.Quizzes)))
		_ = json.NewEncoder(w).Encode(list)
	})

	mux.HandleFunc("/api/quiz/", func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/api/quiz/")
		idStr, action, _ := strings.Cut(rest, "/")

		quizID, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || quizID <= 0 {
			log.Warn("bad quiz id", zap.String("id", idStr))
			http.Error(w, "bad quiz id", http.StatusBadRequest)
			return
		}

		switch action {
		case "questions":
			getQuestions(w, r, quizzes, quizID, log)
		case "evaluate":
			evaluate(w, r, evals, quizID, log)
		default:
			http.NotFound(w, r)
		}
	})
}

func getQuestions(w http.ResponseWriter, r *http.Request, quizzes service.QuizService, quizID int64, log *zap.Logger) {
	if r.Method != http.MethodGet {
		log.Warn("method not allowed", zap.String("path", r.URL.Path), zap.String("method", r.Method))
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var sessionID *int64
	if raw := r.URL.Query().Get("sessionId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Warn("bad session id", zap.Int64("quiz_id", quizID), zap.String("session_id", raw))
			http.Error(w, "bad session id", http.StatusBadRequest)
			return
		}
		sessionID = &id
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	list, err := quizzes.GetQuestions(ctx, quizID, sessionID)
	if err != nil {
		log.Error("get questions failed", zap.Int64("quiz_id", quizID), zap.Error(err))
		http.Error(w, "Failed to load questions", http.StatusInternalServerError)
		return
	}

	log.Info("questions served",
		zap.Int64("quiz_id", quizID),
		zap.Bool("seeded", sessionID != nil),
		zap.Int("count", len(list.Questions)),
	)
	_ = json.NewEncoder(w).Encode(list)
}

func evaluate(w http.ResponseWriter, r *http.Request, evals service.EvaluationService, quizID int64, log *zap.Logger) {
	if r.Method != http.MethodPost {
		log.Warn("method not allowed", zap.String("path", r.URL.Path), zap.String("method", r.Method))
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req evaluateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("evaluate bad payload", zap.Int64("quiz_id", quizID), zap.Error(err))
		http.Error(w, "Invalid answers", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	report, err := evals.Evaluate(ctx, quizID, req.Answers)
	if err != nil {
		if errors.Is(err, quiz.ErrInvalidAnswers) {
			log.Warn("evaluate invalid answers", zap.Int64("quiz_id", quizID))
			http.Error(w, "Invalid answers", http.StatusBadRequest)
			return
		}
		log.Error("evaluate failed", zap.Int64("quiz_id", quizID), zap.Error(err))
		http.Error(w, "Failed to evaluate quiz", http.StatusInternalServerError)
		return
	}

	log.Info("quiz evaluated",
		zap.Int64("quiz_id", quizID),
		zap.Int("total", report.TotalQuestions),
		zap.Int("score", report.Score),
	)
	_ = json.NewEncoder(w).Encode(report)
}
