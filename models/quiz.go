package models

// QuizQuestion is a multiple-choice question. CorrectAnswer indexes Options.
type QuizQuestion struct {
	ID            string   `json:"id,omitempty"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// StoredQuiz is a quiz attempt. Taken is set once the quiz is completed.
type StoredQuiz struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Questions []QuizQuestion `json:"questions"`
	Score     *int           `json:"score,omitempty"`
	Feedback  string         `json:"feedback,omitempty"`
	Taken     string         `json:"taken,omitempty"`
}
