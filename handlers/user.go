package handlers

import (
	"net/http"

	"github.com/andrewpaige1/flashlearn-api/utils"
)

// GET /api/me
func (db *DBHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":       user.ID,
		"subject":  user.Subject,
		"nickname": user.Nickname,
	})
}
