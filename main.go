package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/khabaroff/portfolio-backend/src/config"
	"github.com/khabaroff/portfolio-backend/src/database"
	"github.com/khabaroff/portfolio-backend/src/handlers"
	"github.com/khabaroff/portfolio-backend/src/logging"
	"github.com/khabaroff/portfolio-backend/src/middleware"
	"github.com/khabaroff/portfolio-backend/src/repositories/postgres"
	"github.com/khabaroff/portfolio-backend/src/services"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize structured logging
	logging.Setup(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	// Refuse to serve without a signing secret (fail fast, not fail open)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	log.Info().
		Int("port", cfg.Port).
		Str("log_level", cfg.LogLevel).
		Dur("token_lifetime", cfg.TokenLifetime).
		Msg("starting server")

	// Initialize database
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := database.New(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	log.Info().Msg("database connected")

	// Initialize repositories
	adminRepo := postgres.NewAdminRepository(db.GetPool())
	projectRepo := postgres.NewProjectRepository(db.GetPool())
	technologyRepo := postgres.NewTechnologyRepository(db.GetPool())
	calendarRepo := postgres.NewCalendarRepository(db.GetPool())
	contentRepo := postgres.NewContentRepository(db.GetPool())

	// Initialize services
	authService, err := services.NewAuthService(adminRepo, cfg.JWTSecret, cfg.TokenLifetime)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize auth service")
	}
	projectService := services.NewProjectService(projectRepo, technologyRepo)
	technologyService := services.NewTechnologyService(technologyRepo)
	calendarService := services.NewCalendarService(calendarRepo)
	contentService := services.NewContentService(contentRepo)

	// Auto-seed admin account on first run (if ADMIN_USERNAME and ADMIN_PASSWORD are set)
	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		admin, err := authService.EnsureAdmin(context.Background(), cfg.AdminUsername, cfg.AdminPassword)
		if err != nil {
			log.Error().Err(err).Msg("failed to seed admin account")
		} else if admin != nil {
			log.Info().Str("username", admin.Username).Msg("initial admin account created")
		}
	}

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(gin.Recovery())
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	setupRoutes(router, db, authService, projectService, technologyService, calendarService, contentService)

	// Create HTTP server with timeouts
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Int("port", cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigChan

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	// Graceful shutdown with timeout
	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("server shut down successfully")
}

// corsConfig allows the configured frontend origins, falling back to the
// local dev servers when none are configured.
func corsConfig(allowedOrigins string) cors.Config {
	origins := []string{
		"http://localhost:5173",
		"http://127.0.0.1:5173",
		"http://localhost:3000",
	}
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
	}

	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

func setupRoutes(
	router *gin.Engine,
	db *database.Database,
	authService *services.AuthService,
	projectService *services.ProjectService,
	technologyService *services.TechnologyService,
	calendarService *services.CalendarService,
	contentService *services.ContentService,
) {
	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	projectHandler := handlers.NewProjectHandler(projectService)
	technologyHandler := handlers.NewTechnologyHandler(technologyService)
	calendarHandler := handlers.NewCalendarHandler(calendarService)
	contentHandler := handlers.NewContentHandler(contentService)

	// Health check endpoints
	router.GET("/health", healthHandler.HandleHealth)
	router.GET("/ready", healthHandler.HandleReady)

	api := router.Group("/api/v1")
	gate := middleware.AdminAuth(authService)

	// Authentication
	api.POST("/auth/token", authHandler.HandleLogin)

	// Projects (reads public, mutations gated)
	api.GET("/projects", projectHandler.HandleList)
	api.GET("/projects/:id", projectHandler.HandleGet)
	api.GET("/projects/:id/background", projectHandler.HandleBackground)
	api.POST("/projects", gate, projectHandler.HandleCreate)
	api.PUT("/projects/:id", gate, projectHandler.HandleUpdate)
	api.DELETE("/projects/:id", gate, projectHandler.HandleDelete)

	// Technologies
	api.GET("/technologies", technologyHandler.HandleList)
	api.GET("/technologies/:id/image", technologyHandler.HandleImage)
	api.POST("/technologies", gate, technologyHandler.HandleCreate)
	api.DELETE("/technologies/:id", gate, technologyHandler.HandleDelete)

	// Calendar
	api.GET("/calendar", calendarHandler.HandleList)
	api.POST("/calendar", gate, calendarHandler.HandleCreate)
	api.PUT("/calendar/:id", gate, calendarHandler.HandleUpdate)
	api.DELETE("/calendar/:id", gate, calendarHandler.HandleDelete)

	// About section
	api.GET("/about", contentHandler.HandleGetAbout)
	api.POST("/about", gate, contentHandler.HandleSaveAbout)

	// Resume
	api.GET("/resume", contentHandler.HandleGetResume)
	api.POST("/resume", gate, contentHandler.HandleSaveResume)

	// Site settings
	api.GET("/settings", contentHandler.HandleGetSettings)
	api.PUT("/settings", gate, contentHandler.HandleSaveSettings)
}
