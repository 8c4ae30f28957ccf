package activity

import (
	"strings"

	"github.com/andrewpaige1/flashlearn-api/models"
)

// SearchResult is one match. ID refers back to the matched item.
type SearchResult struct {
	Type        string `json:"type" yaml:"type"`
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// Search matches query case-insensitively against note titles and content,
// flashcard faces and quiz titles. Results keep collection order: notes,
// then flashcards, then quizzes. A blank query matches nothing.
func Search(query string, notes []models.Note, cards []models.StoredFlashcard, quizzes []models.StoredQuiz) []SearchResult {
	results := []SearchResult{}
	if strings.TrimSpace(query) == "" {
		return results
	}
	q := strings.ToLower(query)
	contains := func(fields ...string) bool {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), q) {
				return true
			}
		}
		return false
	}

	for _, n := range notes {
		if contains(n.Title, n.Content) {
			results = append(results, SearchResult{Type: TypeNote, ID: n.ID, Title: n.Title, Description: Describe(n.Content)})
		}
	}
	for _, c := range cards {
		if contains(c.Front, c.Back) {
			results = append(results, SearchResult{Type: TypeFlashcard, ID: c.ID, Title: c.Front, Description: Describe(c.Back)})
		}
	}
	for _, qz := range quizzes {
		if contains(qz.Title) {
			results = append(results, SearchResult{Type: TypeQuiz, ID: qz.ID, Title: qz.Title, Description: questionCount(qz)})
		}
	}
	return results
}
