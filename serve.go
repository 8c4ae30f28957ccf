package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/andrewpaige1/flashlearn-api/config"
	"github.com/andrewpaige1/flashlearn-api/generator"
	"github.com/andrewpaige1/flashlearn-api/handlers"
	"github.com/andrewpaige1/flashlearn-api/middleware"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			env := config.Load()
			db, err := config.Connect(env)
			if err != nil {
				return err
			}

			gen := generator.NewClient(generator.Config{
				Endpoint: env.OpenRouterURL,
				APIKey:   env.OpenRouterKey,
				Model:    env.OpenRouterModel,
				Timeout:  env.GenerationTimeout,
			})

			handler, err := newRouter(env, db, gen)
			if err != nil {
				return err
			}

			serverAddr := "0.0.0.0:" + env.Port
			log.Printf("Listening on %s", serverAddr)
			return http.ListenAndServe(serverAddr, handler)
		},
	}
}

// newRouter wires every API route behind token validation, user sync and
// CORS.
func newRouter(env config.Environment, db *gorm.DB, gen handlers.Generator) (http.Handler, error) {
	authMiddleware, err := middleware.EnsureValidToken(authConfig(env))
	if err != nil {
		return nil, fmt.Errorf("failed to set up the jwt middleware: %w", err)
	}

	DBHandler := handlers.NewDBHandler(db, gen)
	mux := http.NewServeMux()
	handle := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, middleware.SyncUserMiddleware(db, h))
	}

	handle("GET /api/me", DBHandler.GetCurrentUser)

	// Notes
	handle("GET /api/notes", DBHandler.GetNotes)
	handle("POST /api/notes", DBHandler.CreateNote)
	handle("PUT /api/notes/{noteID}", DBHandler.UpdateNoteByID)
	handle("DELETE /api/notes/{noteID}", DBHandler.DeleteNoteByID)

	// Flashcards
	handle("GET /api/flashcards", DBHandler.GetFlashcards)
	handle("POST /api/flashcards", DBHandler.CreateFlashCard)
	handle("PUT /api/flashcards/{flashcardID}", DBHandler.UpdateFlashCardByID)
	handle("DELETE /api/flashcards/{flashcardID}", DBHandler.DeleteFlashCardByID)
	handle("POST /api/notes/{noteID}/flashcards", DBHandler.GenerateFlashcards)

	// Quiz
	handle("POST /api/notes/{noteID}/quiz", DBHandler.GenerateQuiz)
	handle("GET /api/quiz", DBHandler.GetQuizQuestions)
	handle("GET /api/quizzes", DBHandler.GetQuizzes)
	handle("POST /api/quizzes/{quizID}/complete", DBHandler.CompleteQuiz)

	// Dashboard
	handle("GET /api/dashboard", DBHandler.GetDashboard)
	handle("GET /api/search", DBHandler.Search)
	handle("GET /api/calendar", DBHandler.GetCalendar)

	// Review sessions
	handle("POST /api/review/sessions", DBHandler.CreateReviewSession)
	handle("GET /api/review/sessions/{sessionID}", DBHandler.GetReviewSession)
	handle("POST /api/review/sessions/{sessionID}/{action}", DBHandler.ReviewSessionAction)
	handle("DELETE /api/review/sessions/{sessionID}", DBHandler.DeleteReviewSession)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   env.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(authMiddleware(mux))

	return corsHandler, nil
}
