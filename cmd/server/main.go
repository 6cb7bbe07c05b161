package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"seedcodes/internal/config"
	"seedcodes/internal/domain"
	"seedcodes/internal/handler"
	"seedcodes/internal/middleware"
	"seedcodes/internal/repository/mongodb"
	"seedcodes/internal/seed"
	"seedcodes/internal/service"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"database", cfg.DatabaseName,
	)

	ctx := context.Background()

	// Connect to the document store. Without DATABASE_URL the handle stays
	// unset and database-dependent endpoints degrade per their contracts.
	var projectRepo *mongodb.ProjectRepository
	var diagStore *mongodb.Database
	if cfg.DatabaseURL != "" {
		client, err := mongodb.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to create database client: %v", err)
		}
		defer client.Disconnect(ctx)

		if err := mongodb.Ping(ctx, client); err != nil {
			logger.Warn("database unreachable at startup", "error", err)
		} else {
			logger.Info("database connected", "name", cfg.DatabaseName)
		}

		db := client.Database(cfg.DatabaseName)
		projectRepo = mongodb.NewProjectRepository(db, logger)
		diagStore = mongodb.NewDatabase(db)
	} else {
		logger.Warn("DATABASE_URL not set, running without a database")
	}

	// Create services
	projectService := service.NewProjectService(repoOrNil(projectRepo), logger)
	seedService := service.NewSeedService(repoOrNil(projectRepo), seed.Projects, logger)

	// Create handlers
	projectHandler := handler.NewProjectHandler(projectService, logger)
	seedHandler := handler.NewSeedHandler(seedService, logger)
	diagnosticsHandler := handler.NewDiagnosticsHandler(storeOrNil(diagStore), logger)

	// Seed once at startup; failures are logged, never fatal.
	seedCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	if result, err := seedService.Run(seedCtx); err != nil {
		logger.Warn("startup seeding failed", "error", err)
	} else {
		logger.Info("startup seeding",
			"seeded", result.Seeded,
			"reason", result.Reason,
			"inserted", result.Inserted,
		)
	}
	cancel()

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", projectHandler.Root)
	mux.HandleFunc("GET /schema", projectHandler.Schema)
	mux.HandleFunc("GET /test", diagnosticsHandler.Diagnostics)
	mux.HandleFunc("POST /api/projects", projectHandler.CreateProject)
	mux.HandleFunc("GET /api/projects", projectHandler.ListProjects)
	mux.HandleFunc("POST /api/seed", seedHandler.Seed)

	// Build middleware chain (applied in reverse order, they wrap each other)
	var h http.Handler = mux
	h = middleware.Recovery(logger)(h)
	h = middleware.RequestLogger(logger)(h)

	// CORS - outermost so pre-flight requests are always answered
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// repoOrNil converts a possibly-nil concrete repository into the interface
// without producing a typed nil, so the nil checks in the services work.
func repoOrNil(repo *mongodb.ProjectRepository) domain.ProjectRepository {
	if repo == nil {
		return nil
	}
	return repo
}

// storeOrNil does the same for the diagnostics store.
func storeOrNil(store *mongodb.Database) handler.DiagnosticsStore {
	if store == nil {
		return nil
	}
	return store
}
