package handlers

import (
	"net/http"

	"github.com/andrewpaige1/flashlearn-api/activity"
	"github.com/andrewpaige1/flashlearn-api/models"
	"github.com/andrewpaige1/flashlearn-api/store"
)

// GET /api/dashboard
func (db *DBHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	_, s, ok := db.storeFor(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, activity.Build(store.Load(r.Context(), s), db.Now()))
}

// GET /api/search?q=
func (db *DBHandler) Search(w http.ResponseWriter, r *http.Request) {
	_, s, ok := db.storeFor(w, r)
	if !ok {
		return
	}
	snap := store.Load(r.Context(), s)
	writeJSON(w, http.StatusOK, activity.Search(r.URL.Query().Get("q"), snap.Notes, snap.Flashcards, snap.Quizzes))
}

// GET /api/calendar
func (db *DBHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	_, s, ok := db.storeFor(w, r)
	if !ok {
		return
	}
	entries := store.LoadCollection[models.ActivityEntry](r.Context(), s, store.KeyRecentActivity)
	writeJSON(w, http.StatusOK, activity.MonthCalendar(entries, db.Now()))
}
