package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/project-codexa/backend/internal/adventure"
	"github.com/project-codexa/backend/internal/auth"
	"github.com/project-codexa/backend/internal/database"
	"github.com/project-codexa/backend/internal/gamification"
	"github.com/project-codexa/backend/internal/generator"
	"github.com/project-codexa/backend/internal/middleware"
	"github.com/project-codexa/backend/internal/progress"
	"github.com/project-codexa/backend/internal/session"
	"github.com/rs/cors"
)

func main() {
	// Initialize database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Wiring
	store := gamification.NewStore(db)
	sessions := session.NewManager(store)
	gen := generator.NewGenerator()

	authHandler := auth.NewHandler(db)
	advHandler := adventure.NewHandler(sessions, gen)
	gamHandler := gamification.NewHandler(sessions)
	progHandler := progress.NewHandler(sessions)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/auth/me", authHandler.GetCurrentUser).Methods("GET")

	protected.HandleFunc("/syllabus", advHandler.GetSyllabus).Methods("GET")
	protected.HandleFunc("/settings", advHandler.UpdateSettings).Methods("PUT")
	protected.HandleFunc("/lesson", advHandler.GetLesson).Methods("POST")
	protected.HandleFunc("/ask", advHandler.Ask).Methods("POST")
	protected.HandleFunc("/quiz/start", advHandler.StartQuiz).Methods("POST")
	protected.HandleFunc("/quiz", advHandler.GetQuiz).Methods("GET")
	protected.HandleFunc("/quiz/answer", advHandler.SubmitAnswer).Methods("POST")
	protected.HandleFunc("/quiz/retry", advHandler.RetryQuiz).Methods("POST")

	protected.HandleFunc("/profile", gamHandler.GetProfile).Methods("GET")
	protected.HandleFunc("/quests", gamHandler.GetQuests).Methods("GET")
	protected.HandleFunc("/shop", gamHandler.ListShop).Methods("GET")
	protected.HandleFunc("/shop/buy", gamHandler.BuyItem).Methods("POST")
	protected.HandleFunc("/avatar", gamHandler.SelectAvatar).Methods("POST")
	protected.HandleFunc("/game/start", gamHandler.StartGame).Methods("POST")
	protected.HandleFunc("/game/complete", gamHandler.CompleteGame).Methods("POST")

	protected.HandleFunc("/progress/stats", progHandler.GetStats).Methods("GET")
	protected.HandleFunc("/progress/mastery", progHandler.GetMastery).Methods("GET")
	protected.HandleFunc("/progress/activity", progHandler.GetActivity).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
