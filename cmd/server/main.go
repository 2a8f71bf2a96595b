package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"vault/internal/auth"
	"vault/internal/config"
	"vault/internal/handler"
	"vault/internal/middleware"
	"vault/internal/repository/postgres"
	postgresVault "vault/internal/repository/postgres/vault"
	serviceVault "vault/internal/service/vault"

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
		"table_prefix", cfg.TablePrefix,
	)

	// Elevated-role set, optionally overridden from a YAML file
	elevated, err := config.LoadElevatedRoles(cfg.RolesFile)
	if err != nil {
		log.Fatalf("Failed to load elevated roles: %v", err)
	}

	// Create JWT verifier against the identity provider's JWKS endpoint
	jwtVerifier, err := auth.NewJWTVerifier(cfg.JWKSURL, logger)
	if err != nil {
		log.Fatalf("Failed to create JWT verifier: %v", err)
	}
	defer jwtVerifier.Close()

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected")

	// Create table names and ensure the schema exists
	tables := postgres.NewTableNames(cfg.TablePrefix)
	if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	projectRepo := postgresVault.NewProjectRepository(repoConfig)
	folderRepo := postgresVault.NewFolderRepository(repoConfig)
	fileRepo := postgresVault.NewFileRepository(repoConfig)
	versionRepo := postgresVault.NewVersionRepository(repoConfig)
	annotationRepo := postgresVault.NewAnnotationRepository(repoConfig)
	membershipRepo := postgresVault.NewMembershipRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Create services
	guard := serviceVault.NewAccessGuard(membershipRepo, elevated, logger)
	projectService := serviceVault.NewProjectService(projectRepo, membershipRepo, txManager, guard, elevated, logger)
	folderService := serviceVault.NewFolderService(folderRepo, txManager, guard, logger)
	fileService := serviceVault.NewFileService(fileRepo, folderRepo, guard, logger)
	versionService := serviceVault.NewVersionService(versionRepo, fileRepo, txManager, guard, logger)
	annotationService := serviceVault.NewAnnotationService(annotationRepo, versionRepo, fileRepo, guard, logger)
	maintenanceService := serviceVault.NewMaintenanceService(folderRepo, txManager, guard, logger)

	// Create handlers
	healthHandler := handler.NewHealthHandler(pool, logger)
	projectHandler := handler.NewProjectHandler(projectService, logger)
	folderHandler := handler.NewFolderHandler(folderService, logger)
	fileHandler := handler.NewFileHandler(fileService, logger)
	versionHandler := handler.NewVersionHandler(versionService, logger)
	annotationHandler := handler.NewAnnotationHandler(annotationService, logger)
	maintenanceHandler := handler.NewMaintenanceHandler(maintenanceService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", healthHandler.Check)

	// Project routes
	mux.HandleFunc("GET /api/projects", projectHandler.ListProjects)
	mux.HandleFunc("POST /api/projects", projectHandler.CreateProject)
	mux.HandleFunc("GET /api/projects/{id}", projectHandler.GetProject)

	// Membership routes
	mux.HandleFunc("GET /api/projects/{id}/members", projectHandler.ListMembers)
	mux.HandleFunc("POST /api/projects/{id}/members", projectHandler.AddMember)
	mux.HandleFunc("DELETE /api/projects/{id}/members/{userID}", projectHandler.RemoveMember)

	// Folder routes
	mux.HandleFunc("GET /api/projects/{id}/folders", folderHandler.ListChildren)
	mux.HandleFunc("POST /api/projects/{id}/folders", folderHandler.CreateFolder)
	mux.HandleFunc("PATCH /api/projects/{id}/folders/{folderID}/parent", folderHandler.Reparent)
	mux.HandleFunc("GET /api/projects/{id}/folders/{folderID}/path", folderHandler.ResolvePath)

	// File routes
	mux.HandleFunc("GET /api/projects/{id}/files", fileHandler.ListFiles)
	mux.HandleFunc("POST /api/projects/{id}/files", fileHandler.CreateFile)
	mux.HandleFunc("PATCH /api/projects/{id}/files/{fileID}/folder", fileHandler.MoveFile)
	mux.HandleFunc("GET /api/files/{id}", fileHandler.GetFile)

	// Version routes
	mux.HandleFunc("GET /api/files/{id}/versions", versionHandler.ListVersions)
	mux.HandleFunc("POST /api/files/{id}/versions", versionHandler.AddVersion)
	mux.HandleFunc("GET /api/versions/{id}", versionHandler.GetVersion)

	// Annotation routes
	mux.HandleFunc("GET /api/versions/{id}/annotations", annotationHandler.ListAnnotations)
	mux.HandleFunc("POST /api/versions/{id}/annotations", annotationHandler.AddAnnotation)
	mux.HandleFunc("PATCH /api/annotations/{id}/status", annotationHandler.SetStatus)

	// Maintenance routes
	mux.HandleFunc("POST /api/projects/{id}/maintenance/linearize", maintenanceHandler.LinearizeChain)

	// Build middleware chain
	var httpHandler http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Auth → Routes
	httpHandler = middleware.Auth(jwtVerifier)(httpHandler)
	httpHandler = middleware.Recovery(logger)(httpHandler)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	httpHandler = corsHandler.Handler(httpHandler)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "port", cfg.Port)
		errCh <- server.ListenAndServe()
	}()

	// Wait for shutdown signal or server failure
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", "error", err)
		}
	}
}
