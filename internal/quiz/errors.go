package quiz

import "errors"

var (
	ErrInvalidAnswers = errors.New("invalid answers")
)
