package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AnayLodha/kairo/internal/config"
	"github.com/AnayLodha/kairo/internal/database"
	"github.com/AnayLodha/kairo/internal/handlers"
	"github.com/AnayLodha/kairo/internal/repository"
	"github.com/AnayLodha/kairo/internal/security"
	"github.com/AnayLodha/kairo/internal/service"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	markRepo := repository.NewAcademicRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	moodRepo := repository.NewMoodRepository(db)
	reflectionRepo := repository.NewReflectionRepository(db)
	streakRepo := repository.NewStreakRepository(db)
	ideaRepo := repository.NewIdeaRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.SessionDuration)
	taskService := service.NewTaskService(taskRepo)
	academicService := service.NewAcademicService(markRepo, subjectRepo, db.IsDuplicateError)
	journalService := service.NewJournalService(moodRepo, reflectionRepo)
	streakService := service.NewStreakService(streakRepo, taskRepo)
	ideaService := service.NewIdeaService(ideaRepo)

	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL)
	if err != nil {
		log.Printf("Warning: email disabled: %v", err)
	}

	oauthProviders := map[string]handlers.OAuthProvider{
		"google": {
			Name:  "google",
			Label: "Google",
			Config: &oauth2.Config{
				ClientID:     cfg.GoogleClientID,
				ClientSecret: cfg.GoogleClientSecret,
				Endpoint:     google.Endpoint,
				Scopes:       []string{"openid", "email", "profile"},
			},
			UserInfoURL: "https://www.googleapis.com/oauth2/v2/userinfo",
		},
	}

	csrf := security.NewCSRFGenerator(cfg.CSRFSecret)
	limiter := security.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)

	// Initialize handlers
	middleware := handlers.NewMiddleware(authService, csrf, limiter)
	authHandler := handlers.NewAuthHandler(authService, academicService, emailService, csrf, oauthProviders, cfg.OAuthRedirectBaseURL)
	taskHandler := handlers.NewTaskHandler(taskService)
	academicHandler := handlers.NewAcademicHandler(academicService)
	journalHandler := handlers.NewJournalHandler(journalService)
	streakHandler := handlers.NewStreakHandler(streakService)
	ideaHandler := handlers.NewIdeaHandler(ideaService)
	dashboardHandler := handlers.NewDashboardHandler(taskService, academicService, journalService, streakService)

	// Setup routes
	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("POST /api/auth/register", middleware.RateLimit(authHandler.Register))
	mux.HandleFunc("POST /api/auth/login", middleware.RateLimit(authHandler.Login))
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)
	mux.HandleFunc("POST /api/auth/password-reset/request", middleware.RateLimit(authHandler.RequestPasswordReset))
	mux.HandleFunc("POST /api/auth/password-reset/confirm", middleware.RateLimit(authHandler.ConfirmPasswordReset))
	mux.HandleFunc("GET /auth/{provider}/start", authHandler.StartOAuth)
	mux.HandleFunc("GET /auth/{provider}/callback", authHandler.OAuthCallback)

	// Session
	mux.HandleFunc("GET /api/auth/me", middleware.RequireAuth(authHandler.Me))

	// Daily tasks
	mux.HandleFunc("GET /api/tasks", middleware.RequireAuth(taskHandler.List))
	mux.HandleFunc("POST /api/tasks", middleware.RequireAuth(middleware.CSRFProtect(taskHandler.Create)))
	mux.HandleFunc("POST /api/tasks/{id}/toggle", middleware.RequireAuth(middleware.CSRFProtect(taskHandler.Toggle)))
	mux.HandleFunc("DELETE /api/tasks/{id}", middleware.RequireAuth(middleware.CSRFProtect(taskHandler.Delete)))

	// Exam marks and subjects
	mux.HandleFunc("GET /api/marks", middleware.RequireAuth(academicHandler.ListMarks))
	mux.HandleFunc("POST /api/marks", middleware.RequireAuth(middleware.CSRFProtect(academicHandler.CreateMark)))
	mux.HandleFunc("DELETE /api/marks/{id}", middleware.RequireAuth(middleware.CSRFProtect(academicHandler.DeleteMark)))
	mux.HandleFunc("GET /api/academics/summary", middleware.RequireAuth(academicHandler.Summary))
	mux.HandleFunc("GET /api/subjects", middleware.RequireAuth(academicHandler.ListSubjects))
	mux.HandleFunc("POST /api/subjects", middleware.RequireAuth(middleware.CSRFProtect(academicHandler.CreateSubject)))
	mux.HandleFunc("DELETE /api/subjects/{id}", middleware.RequireAuth(middleware.CSRFProtect(academicHandler.DeleteSubject)))
	mux.HandleFunc("POST /api/subjects/defaults", middleware.RequireAuth(middleware.CSRFProtect(academicHandler.SeedSubjects)))

	// Mood check-ins and reflections
	mux.HandleFunc("GET /api/mood", middleware.RequireAuth(journalHandler.Mood))
	mux.HandleFunc("PUT /api/mood/today", middleware.RequireAuth(middleware.CSRFProtect(journalHandler.SaveMood)))
	mux.HandleFunc("GET /api/reflections", middleware.RequireAuth(journalHandler.Reflections))
	mux.HandleFunc("PUT /api/reflections/today", middleware.RequireAuth(middleware.CSRFProtect(journalHandler.SaveReflection)))

	// Streak
	mux.HandleFunc("GET /api/streak", middleware.RequireAuth(streakHandler.Get))
	mux.HandleFunc("POST /api/streak/checkin", middleware.RequireAuth(middleware.CSRFProtect(streakHandler.CheckIn)))

	// Creative ideas
	mux.HandleFunc("GET /api/ideas", middleware.RequireAuth(ideaHandler.List))
	mux.HandleFunc("POST /api/ideas", middleware.RequireAuth(middleware.CSRFProtect(ideaHandler.Create)))
	mux.HandleFunc("DELETE /api/ideas/{id}", middleware.RequireAuth(middleware.CSRFProtect(ideaHandler.Delete)))

	// Dashboard
	mux.HandleFunc("GET /api/dashboard", middleware.RequireAuth(dashboardHandler.Overview))

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start background session cleanup
	go cleanupExpired(authService)

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
}

// cleanupExpired periodically removes expired sessions and reset tokens
func cleanupExpired(authService *service.AuthService) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		if err := authService.CleanupExpiredSessions(); err != nil {
			log.Printf("Error cleaning up expired sessions: %v", err)
		} else {
			log.Println("Expired sessions cleaned up")
		}

		if err := authService.CleanupExpiredPasswordResetTokens(); err != nil {
			log.Printf("Error cleaning up expired reset tokens: %v", err)
		}
	}
}
