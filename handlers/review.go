package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/andrewpaige1/flashlearn-api/models"
	"github.com/andrewpaige1/flashlearn-api/review"
	"github.com/andrewpaige1/flashlearn-api/store"
)

// SessionView is the client-facing state of a review session.
type SessionView struct {
	ID         string      `json:"id"`
	Mode       review.Mode `json:"mode"`
	Index      int         `json:"index"`
	DeckSize   int         `json:"deckSize"`
	Flipped    bool        `json:"flipped"`
	Front      string      `json:"front"`
	Back       string      `json:"back"`
	Face       string      `json:"face"`
	Progress   int         `json:"progress"`
	Remembered int         `json:"remembered"`
	Pending    int         `json:"pending"`
	Completed  bool        `json:"completed"`
}

func viewOf(id string, s *review.Session) SessionView {
	card := s.Current()
	return SessionView{
		ID:         id,
		Mode:       s.Mode(),
		Index:      s.Index(),
		DeckSize:   s.DeckSize(),
		Flipped:    s.Flipped(),
		Front:      card.Front,
		Back:       card.Back,
		Face:       s.Face(),
		Progress:   s.Progress(),
		Remembered: s.Remembered(),
		Pending:    len(s.RepeatQueue()),
	}
}

// POST /api/review/sessions
func (db *DBHandler) CreateReviewSession(w http.ResponseWriter, r *http.Request) {
	user, s, ok := db.storeFor(w, r)
	if !ok {
		return
	}

	type CreateSessionRequest struct {
		Cards []models.Card `json:"cards"`
		Front string        `json:"front"`
		Back  string        `json:"back"`
	}
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	deck := req.Cards
	if len(deck) == 0 {
		stored, ok := readCollection[models.StoredFlashcard](w, r, s, store.KeyFlashcards)
		if !ok {
			return
		}
		for _, card := range stored {
			deck = append(deck, card.Card())
		}
	}

	session := review.NewSession(deck, models.Card{Front: req.Front, Back: req.Back})
	id := db.Sessions.Add(user.ID, session)
	log.Printf("CreateReviewSession: Created session %s with %d cards for userID=%d", id, len(deck), user.ID)

	writeJSON(w, http.StatusCreated, viewOf(id, session))
}

// GET /api/review/sessions/{sessionID}
func (db *DBHandler) GetReviewSession(w http.ResponseWriter, r *http.Request) {
	user, _, ok := db.storeFor(w, r)
	if !ok {
		return
	}
	id := r.PathValue("sessionID")

	var view SessionView
	if err := db.Sessions.Do(user.ID, id, func(s *review.Session) { view = viewOf(id, s) }); err != nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// POST /api/review/sessions/{sessionID}/{action}
func (db *DBHandler) ReviewSessionAction(w http.ResponseWriter, r *http.Request) {
	user, s, ok := db.storeFor(w, r)
	if !ok {
		return
	}
	id := r.PathValue("sessionID")
	action := r.PathValue("action")

	var apply func(*review.Session) bool
	switch action {
	case "start":
		apply = func(s *review.Session) bool { s.Start(); return false }
	case "flip":
		apply = func(s *review.Session) bool { s.Flip(); return false }
	case "remembered":
		apply = (*review.Session).MarkRemembered
	case "repeat":
		apply = (*review.Session).MarkRepeat
	default:
		http.Error(w, fmt.Sprintf("Unknown action %q", action), http.StatusBadRequest)
		return
	}

	var view SessionView
	err := db.Sessions.Do(user.ID, id, func(s *review.Session) {
		completed := apply(s)
		view = viewOf(id, s)
		view.Completed = completed
	})
	if err != nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	if view.Completed {
		entry := models.ActivityEntry{
			Type:  models.ActivityFlashcard,
			Title: fmt.Sprintf("Completed review session (%d cards)", view.DeckSize),
			Date:  db.timestamp(),
		}
		unlock := db.lockUser(user.ID)
		err := store.AppendActivity(r.Context(), s, entry)
		unlock()
		if err != nil {
			log.Printf("ReviewSessionAction: Failed to record activity for userID=%d: %v", user.ID, err)
		}
	}

	writeJSON(w, http.StatusOK, view)
}

// DELETE /api/review/sessions/{sessionID}
func (db *DBHandler) DeleteReviewSession(w http.ResponseWriter, r *http.Request) {
	user, _, ok := db.storeFor(w, r)
	if !ok {
		return
	}
	if err := db.Sessions.Remove(user.ID, r.PathValue("sessionID")); err != nil {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
