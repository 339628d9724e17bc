package domain

import "fmt"

// QuizOptionCount is the required number of answer options per question.
const QuizOptionCount = 4

// QuizQuestion is a generated multiple-choice item derived from a user's own
// impressions or a free-text topic.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// Validate checks the per-question shape invariant: non-empty question text,
// exactly four options, and a correct-answer index inside the options.
func (q QuizQuestion) Validate() error {
	if q.Question == "" {
		return fmt.Errorf("question text is empty")
	}
	if len(q.Options) != QuizOptionCount {
		return fmt.Errorf("expected %d options, got %d", QuizOptionCount, len(q.Options))
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return fmt.Errorf("correctAnswer %d out of range [0,%d)", q.CorrectAnswer, len(q.Options))
	}
	return nil
}
