package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/andrewpaige1/flashlearn-api/models"
	"github.com/andrewpaige1/flashlearn-api/store"
)

func noteID(n models.Note) string { return n.ID }

// GET /api/notes
func (db *DBHandler) GetNotes(w http.ResponseWriter, r *http.Request) {
	_, s, ok := db.storeFor(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, store.LoadCollection[models.Note](r.Context(), s, store.KeyNotes))
}

// POST /api/notes
func (db *DBHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	user, s, ok := db.storeFor(w, r)
	if !ok {
		return
	}

	type CreateNoteRequest struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		Pinned  bool   `json:"pinned"`
	}
	var req CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("CreateNote: Invalid request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		http.Error(w, "Note title is required", http.StatusBadRequest)
		return
	}

	id, err := gonanoid.New()
	if err != nil {
		log.Printf("CreateNote: Failed to generate id: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	note := models.Note{
		ID:      id,
		Title:   req.Title,
		Content: req.Content,
		Created: db.timestamp(),
		Pinned:  req.Pinned,
	}

	unlock := db.lockUser(user.ID)
	defer unlock()

	notes, ok := readCollection[models.Note](w, r, s, store.KeyNotes)
	if !ok {
		return
	}
	notes = append(notes, note)
	if err := store.SaveCollection(r.Context(), s, store.KeyNotes, notes); err != nil {
		log.Printf("CreateNote: Failed to save notes for userID=%d: %v", user.ID, err)
		http.Error(w, "Failed to create note", http.StatusInternalServerError)
		return
	}

	log.Printf("CreateNote: Created note %s for userID=%d", note.ID, user.ID)
	writeJSON(w, http.StatusCreated, note)
}

// PUT /api/notes/{noteID}
func (db *DBHandler) UpdateNoteByID(w http.ResponseWriter, r *http.Request) {
	user, s, ok := db.storeFor(w, r)
	if !ok {
		return
	}
	id := r.PathValue("noteID")

	type UpdateNoteRequest struct {
		Title   *string `json:"title,omitempty"`
		Content *string `json:"content,omitempty"`
		Pinned  *bool   `json:"pinned,omitempty"`
	}
	var req UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	unlock := db.lockUser(user.ID)
	defer unlock()

	notes, ok := readCollection[models.Note](w, r, s, store.KeyNotes)
	if !ok {
		return
	}
	i := indexByID(notes, id, noteID)
	if i < 0 {
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			http.Error(w, "Note title is required", http.StatusBadRequest)
			return
		}
		notes[i].Title = *req.Title
	}
	if req.Content != nil {
		notes[i].Content = *req.Content
	}
	if req.Pinned != nil {
		notes[i].Pinned = *req.Pinned
	}

	if err := store.SaveCollection(r.Context(), s, store.KeyNotes, notes); err != nil {
		log.Printf("UpdateNoteByID: Failed to save notes for userID=%d: %v", user.ID, err)
		http.Error(w, "Failed to update note", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, notes[i])
}

// DELETE /api/notes/{noteID}
func (db *DBHandler) DeleteNoteByID(w http.ResponseWriter, r *http.Request) {
	user, s, ok := db.storeFor(w, r)
	if !ok {
		return
	}
	id := r.PathValue("noteID")

	unlock := db.lockUser(user.ID)
	defer unlock()

	notes, ok := readCollection[models.Note](w, r, s, store.KeyNotes)
	if !ok {
		return
	}
	i := indexByID(notes, id, noteID)
	if i < 0 {
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	}
	notes = append(notes[:i], notes[i+1:]...)

	if err := store.SaveCollection(r.Context(), s, store.KeyNotes, notes); err != nil {
		log.Printf("DeleteNoteByID: Failed to save notes for userID=%d: %v", user.ID, err)
		http.Error(w, "Failed to delete note", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// findNote loads the note named by the {noteID} path value, writing a 404
// when it does not exist.
func findNote(w http.ResponseWriter, r *http.Request, s store.Store) (models.Note, bool) {
	notes, ok := readCollection[models.Note](w, r, s, store.KeyNotes)
	if !ok {
		return models.Note{}, false
	}
	i := indexByID(notes, r.PathValue("noteID"), noteID)
	if i < 0 {
		http.Error(w, "Note not found", http.StatusNotFound)
		return models.Note{}, false
	}
	return notes[i], true
}
