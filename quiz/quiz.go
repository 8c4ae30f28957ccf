// Package quiz scores multiple-choice quiz attempts.
package quiz

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/andrewpaige1/flashlearn-api/models"
)

// Score counts answers that match the question's correct option. Missing
// answers count as wrong; extra answers are ignored.
func Score(questions []models.QuizQuestion, answers []int) int {
	score := 0
	for i, q := range questions {
		if i < len(answers) && answers[i] == q.CorrectAnswer {
			score++
		}
	}
	return score
}

// Feedback is the message shown once every question is answered.
func Feedback(score, total int) string {
	switch {
	case total > 0 && score == total:
		return "Excellent! You got all questions correct."
	case score > 0:
		return fmt.Sprintf("You got %d out of %d correct. Try again to improve your score!", score, total)
	default:
		return "No correct answers. Try again!"
	}
}

// AssignIDs gives every question a fresh id.
func AssignIDs(questions []models.QuizQuestion) ([]models.QuizQuestion, error) {
	out := make([]models.QuizQuestion, len(questions))
	for i, q := range questions {
		id, err := gonanoid.New()
		if err != nil {
			return nil, fmt.Errorf("failed to generate question id: %w", err)
		}
		q.ID = id
		out[i] = q
	}
	return out, nil
}
