package quiz

type Quiz struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type Option struct {
	ID   int64  `json:"id"`
	Text string `json:"option_text"`
}

// Question is a quiz question with its selectable options, ordered by
// option id ascending.
type Question struct {
	ID      int64    `json:"id"`
	Text    string   `json:"question_text"`
	Options []Option `json:"options"`
}
