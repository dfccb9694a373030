package app

import (
	"context"
	"net/http"
	"time"

	"github.com/Ykushvanth/quiz-backend/internal/handler"
	"github.com/Ykushvanth/quiz-backend/internal/logger"
	"github.com/Ykushvanth/quiz-backend/internal/service"
	"github.com/Ykushvanth/quiz-backend/internal/storage"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type App struct {
	cfg Config
	log *zap.Logger
	db  *pgxpool.Pool
	srv *http.Server
}

func New(cfg Config) (*App, error) {
	l, err := logger.New(logger.Config{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		_ = l.Sync()
		return nil, err
	}

	qs := storage.NewPostgresQuizStore(db)

	quizSvc := service.NewQuizService(qs)
	evalSvc := service.NewEvaluationService(qs)

	mux := http.NewServeMux()
	handler.RegisterHandlers(mux, quizSvc, evalSvc, l)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: mux,
	}

	return &App{cfg: cfg, log: l, db: db, srv: srv}, nil
}

func (a *App) Run() error {
	a.log.Info("server started",
		zap.String("addr", a.cfg.HTTPAddr),
		zap.String("log_level", a.cfg.LogLevel),
		zap.String("log_file", a.cfg.LogFile),
	)
	return a.srv.ListenAndServe()
}

func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
}
