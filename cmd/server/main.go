package main

import (
	"os"

	"github.com/Ykushvanth/quiz-backend/internal/app"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := app.Config{
		HTTPAddr:    getenv("HTTP_ADDR", ":3001"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		LogLevel: getenv("LOG_LEVEL", "info"),
		LogFile:  os.Getenv("LOG_FILE"),
	}

	if cfg.DatabaseURL == "" {
		panic("DATABASE_URL is required")
	}

	a, err := app.New(cfg)
	if err != nil {
		panic(err)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		panic(err)
	}
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
