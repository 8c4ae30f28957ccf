package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/andrewpaige1/flashlearn-api/models"
	"github.com/andrewpaige1/flashlearn-api/quiz"
	"github.com/andrewpaige1/flashlearn-api/store"
)

func quizID(q models.StoredQuiz) string { return q.ID }

// GET /api/quiz
func (db *DBHandler) GetQuizQuestions(w http.ResponseWriter, r *http.Request) {
	_, s, ok := db.storeFor(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, store.LoadCollection[models.QuizQuestion](r.Context(), s, store.KeyQuizQuestions))
}

// GET /api/quizzes
func (db *DBHandler) GetQuizzes(w http.ResponseWriter, r *http.Request) {
	_, s, ok := db.storeFor(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, store.LoadCollection[models.StoredQuiz](r.Context(), s, store.KeyQuizzes))
}

// POST /api/notes/{noteID}/quiz
func (db *DBHandler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	user, s, ok := db.storeFor(w, r)
	if !ok {
		return
	}
	note, ok := findNote(w, r, s)
	if !ok {
		return
	}

	if !db.Guard.TryAcquire(user.ID) {
		http.Error(w, "Generation already in progress", http.StatusConflict)
		return
	}
	defer db.Guard.Release(user.ID)

	questions, err := quiz.AssignIDs(db.Generator.GenerateQuiz(r.Context(), note.Content))
	if err != nil {
		log.Printf("GenerateQuiz: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// An empty result clears the current questions and stores no quiz.
	stored := models.StoredQuiz{Title: note.Title, Questions: questions}

	unlock := db.lockUser(user.ID)
	defer unlock()

	ctx := r.Context()
	if err := store.SaveCollection(ctx, s, store.KeyQuizQuestions, questions); err != nil {
		log.Printf("GenerateQuiz: Failed to save quiz questions for userID=%d: %v", user.ID, err)
		http.Error(w, "Failed to save quiz", http.StatusInternalServerError)
		return
	}
	if len(questions) > 0 {
		id, err := gonanoid.New()
		if err != nil {
			log.Printf("GenerateQuiz: Failed to generate quiz id: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		stored.ID = id
		quizzes, ok := readCollection[models.StoredQuiz](w, r, s, store.KeyQuizzes)
		if !ok {
			return
		}
		if err := store.SaveCollection(ctx, s, store.KeyQuizzes, append(quizzes, stored)); err != nil {
			log.Printf("GenerateQuiz: Failed to save quizzes for userID=%d: %v", user.ID, err)
			http.Error(w, "Failed to save quiz", http.StatusInternalServerError)
			return
		}
	}

	entry := models.ActivityEntry{
		Type:  models.ActivityQuiz,
		Title: fmt.Sprintf("Generated quiz from \"%s\"", note.Title),
		Date:  db.timestamp(),
	}
	if err := store.AppendActivity(ctx, s, entry); err != nil {
		log.Printf("GenerateQuiz: Failed to record activity for userID=%d: %v", user.ID, err)
	}

	writeJSON(w, http.StatusOK, stored)
}

// POST /api/quizzes/{quizID}/complete
func (db *DBHandler) CompleteQuiz(w http.ResponseWriter, r *http.Request) {
	user, s, ok := db.storeFor(w, r)
	if !ok {
		return
	}

	type CompleteQuizRequest struct {
		Answers []int `json:"answers"`
	}
	var req CompleteQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	unlock := db.lockUser(user.ID)
	defer unlock()

	ctx := r.Context()
	quizzes, ok := readCollection[models.StoredQuiz](w, r, s, store.KeyQuizzes)
	if !ok {
		return
	}
	i := indexByID(quizzes, r.PathValue("quizID"), quizID)
	if i < 0 {
		http.Error(w, "Quiz not found", http.StatusNotFound)
		return
	}

	total := len(quizzes[i].Questions)
	score := quiz.Score(quizzes[i].Questions, req.Answers)
	quizzes[i].Score = &score
	quizzes[i].Feedback = quiz.Feedback(score, total)
	quizzes[i].Taken = db.timestamp()

	if err := store.SaveCollection(ctx, s, store.KeyQuizzes, quizzes); err != nil {
		log.Printf("CompleteQuiz: Failed to save quizzes for userID=%d: %v", user.ID, err)
		http.Error(w, "Failed to save quiz", http.StatusInternalServerError)
		return
	}

	entry := models.ActivityEntry{
		Type:  models.ActivityQuiz,
		Title: fmt.Sprintf("Completed quiz (%d/%d)", score, total),
		Date:  quizzes[i].Taken,
	}
	if err := store.AppendActivity(ctx, s, entry); err != nil {
		log.Printf("CompleteQuiz: Failed to record activity for userID=%d: %v", user.ID, err)
	}

	writeJSON(w, http.StatusOK, quizzes[i])
}
