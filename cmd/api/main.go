package main

import (
	"context"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/nazorathub/nazorat-hub/internal/infra/database"
	"github.com/nazorathub/nazorat-hub/internal/infra/gateway"
	"github.com/nazorathub/nazorat-hub/internal/infra/http/handlers"
	"github.com/nazorathub/nazorat-hub/internal/infra/http/middleware"
	"github.com/nazorathub/nazorat-hub/internal/infra/integration/gemini"
	"github.com/nazorathub/nazorat-hub/internal/infra/integration/supabase"
	"github.com/nazorathub/nazorat-hub/internal/repository"
	"github.com/nazorathub/nazorat-hub/internal/usecase"
)

func main() {
	godotenv.Load()

	logger := newLogger()
	defer logger.Sync()

	ctx := context.Background()

	// 1. Local durable cache
	cachePath := getEnv("CACHE_DB_PATH", "nazorat.db")
	store, err := database.NewStore(cachePath)
	if err != nil {
		logger.Fatal("failed to open local cache", zap.Error(err))
	}
	defer store.Close()

	// 2. Remote store client. Stored credentials win over the environment;
	// either may be absent, which is plain local mode.
	remote := buildRemote(ctx, store, logger)
	gw := gateway.New(remote, store, logger)

	// 3. Repositories
	leadRepo := repository.NewLeadRepository(gw)
	userRepo := repository.NewUserRepository(gw)
	reportRepo := repository.NewReportRepository(gw)

	// 4. Integrations
	var analyzer usecase.ReportAnalyzer
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		client, err := gemini.NewClient(ctx, apiKey, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			logger.Warn("gemini client not constructed, analysis falls back to fixed text", zap.Error(err))
		} else {
			analyzer = client
		}
	}

	// 5. UseCases
	distributeUC := usecase.NewDistributeLeadsUseCase(leadRepo, userRepo)
	importUC := usecase.NewImportLeadsUseCase(leadRepo)
	submitUC := usecase.NewSubmitReportUseCase(reportRepo, leadRepo)
	loginUC := usecase.NewLoginUseCase(userRepo)
	backupUC := usecase.NewBackupUseCase(userRepo, reportRepo, leadRepo)
	analyzeUC := usecase.NewAnalyzeReportsUseCase(analyzer)
	ensureAdminUC := usecase.NewEnsureAdminUseCase(userRepo)

	// Idempotent startup bootstrap: exactly one ADMIN must exist.
	if out, err := ensureAdminUC.Execute(ctx); err != nil {
		logger.Fatal("admin bootstrap failed", zap.Error(err))
	} else if out.Created {
		logger.Info("bootstrap admin created")
	}

	// 6. Handlers
	leadHandler := handlers.NewLeadHandler(leadRepo, distributeUC, importUC, logger)
	reportHandler := handlers.NewReportHandler(reportRepo, userRepo, submitUC, analyzeUC, logger)
	userHandler := handlers.NewUserHandler(userRepo, logger)
	authHandler := handlers.NewAuthHandler(loginUC)
	adminHandler := handlers.NewAdminHandler(gw, backupUC, logger)
	healthHandler := handlers.NewHealthHandler(gw, store)

	// 7. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/login", authHandler.HandleLogin)
	r.Get("/branches", adminHandler.HandleBranches)

	r.Get("/leads", leadHandler.HandleList)
	r.Post("/leads", leadHandler.HandleCreate)
	r.Delete("/leads", leadHandler.HandlePurge)
	r.Post("/leads/distribute", leadHandler.HandleDistribute)
	r.Post("/leads/import", leadHandler.HandleImport)

	r.Get("/reports", reportHandler.HandleList)
	r.Post("/reports", reportHandler.HandleSubmit)
	r.Post("/reports/analyze", reportHandler.HandleAnalyze)
	r.Get("/reports/archive/{date}/export", reportHandler.HandleArchiveExport)

	r.Get("/users", userHandler.HandleList)
	r.Post("/users", userHandler.HandleCreate)
	r.Put("/users/{id}", userHandler.HandleUpdate)
	r.Delete("/users/{id}", userHandler.HandleDelete)

	r.Put("/config/database", adminHandler.HandleUpdateConfig)
	r.Get("/backup", adminHandler.HandleBackup)

	port := ":" + getEnv("PORT", "8080")
	logger.Info("NazoratHub backend listening", zap.String("addr", port), zap.Bool("online", gw.Connected()))
	if err := http.ListenAndServe(port, r); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// buildRemote constructs the supabase client from stored credentials,
// falling back to the environment. Returns nil for local mode.
func buildRemote(ctx context.Context, store *database.Store, logger *zap.Logger) gateway.RemoteStore {
	url, err := store.GetConfig(ctx, database.ConfigSupabaseURL)
	if err != nil {
		logger.Warn("failed to read stored remote config", zap.Error(err))
	}
	key, err := store.GetConfig(ctx, database.ConfigSupabaseKey)
	if err != nil {
		logger.Warn("failed to read stored remote config", zap.Error(err))
	}
	if url == "" {
		url = os.Getenv("SUPABASE_URL")
	}
	if key == "" {
		key = os.Getenv("SUPABASE_KEY")
	}

	client, err := supabase.NewClient(url, key)
	if err != nil {
		logger.Warn("remote store not configured, running in local mode", zap.Error(err))
		return nil
	}
	return client
}

func newLogger() *zap.Logger {
	if os.Getenv("APP_ENV") == "production" {
		logger, _ := zap.NewProduction()
		return logger
	}
	logger, _ := zap.NewDevelopment()
	return logger
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
