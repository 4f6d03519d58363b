// Newsflow ingestion server — polls feeds, scores and fetches articles,
// runs LLM analysis, and maintains the vector index, with an admin HTTP API.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/finsight/newsflow/pkg/analysis"
	"github.com/finsight/newsflow/pkg/api"
	"github.com/finsight/newsflow/pkg/cleanup"
	"github.com/finsight/newsflow/pkg/config"
	"github.com/finsight/newsflow/pkg/contentstore"
	"github.com/finsight/newsflow/pkg/database"
	"github.com/finsight/newsflow/pkg/dispatcher"
	"github.com/finsight/newsflow/pkg/fetcher"
	"github.com/finsight/newsflow/pkg/indexer"
	"github.com/finsight/newsflow/pkg/llm"
	"github.com/finsight/newsflow/pkg/queue"
	"github.com/finsight/newsflow/pkg/scoring"
	"github.com/finsight/newsflow/pkg/services"
	"github.com/finsight/newsflow/pkg/stats"
	"github.com/finsight/newsflow/pkg/version"
	"github.com/finsight/newsflow/pkg/workflow"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting newsflow",
		"version", version.Full(),
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database (runs migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. One-time startup orphan recovery
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to recover startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 4. Stats tracker (fail-soft: a Redis outage degrades counters, not the pipeline)
	tracker := stats.NewTracker(cfg.StatsRedisAddr)
	if err := tracker.Ping(ctx); err != nil {
		slog.Warn("Stats Redis unreachable at boot, counters will be dropped until it recovers",
			"addr", cfg.StatsRedisAddr, "error", err)
	}
	defer func() { _ = tracker.Close() }()

	// 5. LLM gateway
	gateway := llm.NewGateway(cfg.PurposeResolver)
	cfgStats := cfg.Stats()
	slog.Info("LLM gateway initialized",
		"providers", cfgStats.LLMProviders, "purposes", cfgStats.Purposes)

	// 6. Services and content store
	articleService := services.NewArticleService(dbClient.Client)
	feedService := services.NewFeedService(dbClient.Client)
	settingsService := services.NewSettingsService(dbClient.Client, cfg.Pipeline)
	traceService := services.NewTraceService(dbClient.Client)

	store, err := contentstore.NewStore(cfg.Pipeline.ContentRoot)
	if err != nil {
		slog.Error("Failed to open content store", "root", cfg.Pipeline.ContentRoot, "error", err)
		os.Exit(1)
	}
	slog.Info("Services initialized", "content_root", cfg.Pipeline.ContentRoot)

	// 7. Pipeline stages
	queueClient := queue.NewClient(dbClient.Client)

	scorer := scoring.NewEngine(gateway, settingsService, tracker, cfg.Pipeline)
	prefilter := scoring.NewInitialFilter(gateway, tracker, cfg.Pipeline)
	analyzer := analysis.NewAnalyzer(gateway, tracker, cfg.Pipeline)
	contentIndexer := indexer.NewIndexer(dbClient.DB(), gateway, cfg.Pipeline)

	providers := []fetcher.Provider{
		fetcher.NewScraperProvider(nil),
		fetcher.NewVendorProvider(settingsService, nil),
	}
	refiner := fetcher.NewRefiner(gateway, tracker, cfg.Pipeline)
	articleFetcher := fetcher.NewFetcher(
		providers, settingsService, refiner, store, articleService,
		queueClient, traceService, tracker, cfg.Pipeline)

	engine := workflow.NewEngine(
		store, analyzer, gateway, contentIndexer,
		articleService, traceService, tracker, cfg.Pipeline)

	ingestDispatcher := dispatcher.NewDispatcher(
		feedService, articleService, scorer, prefilter, dispatcher.NewPoller(nil),
		store, queueClient, traceService, cfg.Pipeline)

	// 8. Worker pool (before the HTTP server so triggered jobs have consumers)
	executor := queue.NewJobExecutor(ingestDispatcher, articleFetcher, engine)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, executor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 9. Dispatcher ticker
	dispatcherCtx, stopDispatcher := context.WithCancel(ctx)
	go ingestDispatcher.Start(dispatcherCtx)

	// 10. Retention sweeps
	cleanupService := cleanup.NewService(
		cfg.Retention, traceService, store, queueClient, articleService)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 11. Admin HTTP server
	server := api.NewServer(api.Deps{
		DB:        dbClient.DB(),
		Feeds:     feedService,
		Traces:    traceService,
		Stats:     tracker,
		Jobs:      queueClient,
		Monitor:   ingestDispatcher,
		Pool:      workerPool,
		AuthToken: cfg.AdminToken,
	})
	httpServer := server.HTTPServer(":" + httpPort)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Newsflow started successfully",
		"pod_id", podID,
		"default_workers", cfg.Queue.DefaultWorkerCount,
		"scrape_workers", cfg.Queue.ScrapeWorkerCount)

	// 12. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 13. Graceful shutdown: stop intake first, then drain workers.
	stopDispatcher()

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete jobs will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
