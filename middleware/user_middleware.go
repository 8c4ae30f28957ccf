package middleware

import (
	"errors"
	"log"
	"net/http"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"gorm.io/gorm"

	"github.com/andrewpaige1/flashlearn-api/models"
	"github.com/andrewpaige1/flashlearn-api/utils"
)

// SyncUserMiddleware ensures the token's subject exists in the DB and
// attaches the user to the request context.
func SyncUserMiddleware(db *gorm.DB, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subject, ok := utils.GetSubject(r)
		if !ok || subject == "" {
			http.Error(w, "No subject found", http.StatusUnauthorized)
			return
		}

		nickname := ""
		claims, _ := r.Context().Value(jwtmiddleware.ContextKey{}).(*validator.ValidatedClaims)
		if customClaims, ok := claims.CustomClaims.(*CustomClaims); ok && customClaims != nil {
			nickname = customClaims.Nickname
		}

		var user models.User
		result := db.WithContext(r.Context()).Where("subject = ?", subject).First(&user)

		switch {
		case errors.Is(result.Error, gorm.ErrRecordNotFound):
			user = models.User{
				Subject:  subject,
				Nickname: nickname,
			}
			if err := db.WithContext(r.Context()).Create(&user).Error; err != nil {
				http.Error(w, "Failed to create user", http.StatusInternalServerError)
				log.Println("Database creation error:", err)
				return
			}
			log.Printf("Created new user: %s\n", user.Subject)
		case result.Error != nil:
			http.Error(w, "Failed to load user", http.StatusInternalServerError)
			log.Println("Database lookup error:", result.Error)
			return
		case nickname != "" && user.Nickname != nickname:
			user.Nickname = nickname
			if err := db.WithContext(r.Context()).Save(&user).Error; err != nil {
				http.Error(w, "Failed to update user", http.StatusInternalServerError)
				log.Println("Database update error:", err)
				return
			}
			log.Printf("Updated user nickname: %s\n", user.Nickname)
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(r.Context(), &user)))
	}
}
