package app

type Config struct {
	HTTPAddr    string
	DatabaseURL string

	LogLevel string
	LogFile  string
}
