package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/andrewpaige1/flashlearn-api/models"
	"github.com/andrewpaige1/flashlearn-api/store"
)

func flashcardID(f models.StoredFlashcard) string { return f.ID }

// GET /api/flashcards
func (db *DBHandler) GetFlashcards(w http.ResponseWriter, r *http.Request) {
	_, s, ok := db.storeFor(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, store.LoadCollection[models.StoredFlashcard](r.Context(), s, store.KeyFlashcards))
}

// POST /api/flashcards
func (db *DBHandler) CreateFlashCard(w http.ResponseWriter, r *http.Request) {
	user, s, ok := db.storeFor(w, r)
	if !ok {
		return
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	type FlashcardRequestData struct {
		Front  string `json:"front"`
		Back   string `json:"back"`
		Pinned bool   `json:"pinned"`
	}
	var req FlashcardRequestData
	if err := decoder.Decode(&req); err != nil {
		http.Error(w, "Could not decode request", http.StatusBadRequest)
		return
	}
	if req.Front == "" || req.Back == "" {
		http.Error(w, "Each flashcard must have a front and back", http.StatusBadRequest)
		return
	}

	publicID, err := gonanoid.New()
	if err != nil {
		http.Error(w, "Failed to generate ID", http.StatusInternalServerError)
		return
	}

	flashcard := models.StoredFlashcard{
		ID:      publicID,
		Front:   req.Front,
		Back:    req.Back,
		Created: db.timestamp(),
		Pinned:  req.Pinned,
	}

	unlock := db.lockUser(user.ID)
	defer unlock()

	cards, ok := readCollection[models.StoredFlashcard](w, r, s, store.KeyFlashcards)
	if !ok {
		return
	}
	cards = append(cards, flashcard)
	if err := store.SaveCollection(r.Context(), s, store.KeyFlashcards, cards); err != nil {
		log.Printf("CreateFlashCard: Failed to save flashcards for userID=%d: %v", user.ID, err)
		http.Error(w, "Failed to create flashcard", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, flashcard)
}

// PUT /api/flashcards/{flashcardID}
func (db *DBHandler) UpdateFlashCardByID(w http.ResponseWriter, r *http.Request) {
	user, s, ok := db.storeFor(w, r)
	if !ok {
		return
	}
	id := r.PathValue("flashcardID")

	type FlashcardUpdateRequest struct {
		Front  *string `json:"front,omitempty"`
		Back   *string `json:"back,omitempty"`
		Pinned *bool   `json:"pinned,omitempty"`
	}
	var req FlashcardUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	unlock := db.lockUser(user.ID)
	defer unlock()

	cards, ok := readCollection[models.StoredFlashcard](w, r, s, store.KeyFlashcards)
	if !ok {
		return
	}
	i := indexByID(cards, id, flashcardID)
	if i < 0 {
		http.Error(w, "Flashcard not found", http.StatusNotFound)
		return
	}

	if req.Front != nil {
		cards[i].Front = *req.Front
	}
	if req.Back != nil {
		cards[i].Back = *req.Back
	}
	if req.Pinned != nil {
		cards[i].Pinned = *req.Pinned
	}

	if err := store.SaveCollection(r.Context(), s, store.KeyFlashcards, cards); err != nil {
		log.Printf("UpdateFlashCardByID: Failed to save flashcards for userID=%d: %v", user.ID, err)
		http.Error(w, "Failed to update flashcard", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, cards[i])
}

// DELETE /api/flashcards/{flashcardID}
func (db *DBHandler) DeleteFlashCardByID(w http.ResponseWriter, r *http.Request) {
	user, s, ok := db.storeFor(w, r)
	if !ok {
		return
	}
	id := r.PathValue("flashcardID")

	unlock := db.lockUser(user.ID)
	defer unlock()

	cards, ok := readCollection[models.StoredFlashcard](w, r, s, store.KeyFlashcards)
	if !ok {
		return
	}
	i := indexByID(cards, id, flashcardID)
	if i < 0 {
		http.Error(w, "Flashcard not found", http.StatusNotFound)
		return
	}
	cards = append(cards[:i], cards[i+1:]...)

	if err := store.SaveCollection(r.Context(), s, store.KeyFlashcards, cards); err != nil {
		log.Printf("DeleteFlashCardByID: Failed to save flashcards for userID=%d: %v", user.ID, err)
		http.Error(w, "Failed to delete flashcard", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// POST /api/notes/{noteID}/flashcards
func (db *DBHandler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
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

	generated := db.Generator.GenerateFlashcards(r.Context(), note.Content)
	created := make([]models.StoredFlashcard, 0, len(generated))
	now := db.timestamp()
	for _, card := range generated {
		publicID, err := gonanoid.New()
		if err != nil {
			log.Printf("GenerateFlashcards: Failed to generate ID: %v", err)
			http.Error(w, "Failed to generate ID", http.StatusInternalServerError)
			return
		}
		created = append(created, models.StoredFlashcard{
			ID:      publicID,
			Front:   card.Front,
			Back:    card.Back,
			Created: now,
		})
	}

	if len(created) > 0 {
		unlock := db.lockUser(user.ID)
		defer unlock()

		cards, ok := readCollection[models.StoredFlashcard](w, r, s, store.KeyFlashcards)
		if !ok {
			return
		}
		cards = append(cards, created...)
		if err := store.SaveCollection(r.Context(), s, store.KeyFlashcards, cards); err != nil {
			log.Printf("GenerateFlashcards: Failed to save flashcards for userID=%d: %v", user.ID, err)
			http.Error(w, "Failed to save flashcards", http.StatusInternalServerError)
			return
		}
	}

	log.Printf("GenerateFlashcards: Generated %d flashcards from note %s for userID=%d", len(created), note.ID, user.ID)
	writeJSON(w, http.StatusOK, created)
}
