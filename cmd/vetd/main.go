// vetd verification server: provides the HTTP API, manages queue workers,
// and runs company verification pipelines.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/trustlane/vetd/pkg/api"
	"github.com/trustlane/vetd/pkg/cleanup"
	"github.com/trustlane/vetd/pkg/config"
	"github.com/trustlane/vetd/pkg/database"
	"github.com/trustlane/vetd/pkg/integrations"
	"github.com/trustlane/vetd/pkg/llm"
	"github.com/trustlane/vetd/pkg/pipeline"
	"github.com/trustlane/vetd/pkg/queue"
	"github.com/trustlane/vetd/pkg/ratelimit"
	"github.com/trustlane/vetd/pkg/services"
	"github.com/trustlane/vetd/pkg/version"
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
	// Parse command-line flags
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

	podID := resolvePodID()
	slog.Info("Starting vetd",
		"version", version.Full(),
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, filepath.Join(*configDir, "vetd.yaml"))
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
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

	// 3. Domain services
	companyService := services.NewCompanyService(dbClient.Client)
	analysisService := services.NewAnalysisService(dbClient.Client)
	slog.Info("Services initialized")

	// 4. One-time startup orphan cleanup
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, companyService, cfg.Queue, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal, the periodic orphan scan covers whatever this missed
	}

	// 5. Outbound rate limiters, shared across all workers
	limiters := ratelimit.NewRegistry(map[string]float64{
		"whois": cfg.Pipeline.WhoisRateLimit,
		"dns":   cfg.Pipeline.DNSRateLimit,
		"http":  cfg.Pipeline.HTTPRateLimit,
		"llm":   cfg.Pipeline.LLMRateLimit,
	})

	// 6. Probe clients and the pipeline executor
	whoisClient := integrations.NewWhoisClient(cfg.Pipeline.WhoisTimeout)
	dnsClient := integrations.NewDNSClient(cfg.Pipeline.DNSTimeout, cfg.Pipeline.DNSResolver)
	mxClient := integrations.NewMXClient(cfg.Pipeline.MXTimeout, cfg.Pipeline.DNSResolver)
	websiteClient := integrations.NewWebsiteClient(cfg.Pipeline.WebsiteTimeout, cfg.Pipeline.UserAgent)
	phoneClient := integrations.NewPhoneClient(cfg.Pipeline.DefaultPhoneRegion)

	// NewAdjuster returns nil when the LLM is disabled; keep the interface
	// nil in that case so the executor skips the stage.
	var assessor pipeline.Assessor
	if adjuster := llm.NewAdjuster(cfg.LLM, cfg.Pipeline.LLMTimeout, limiters.Get("llm")); adjuster != nil {
		assessor = adjuster
		slog.Info("LLM risk adjustment enabled", "model", cfg.LLM.Model)
	} else {
		slog.Info("LLM risk adjustment disabled")
	}

	warningsService := services.NewSystemWarningsService()

	executor := pipeline.NewExecutor(
		companyService,
		analysisService,
		whoisClient,
		dnsClient,
		mxClient,
		websiteClient,
		phoneClient,
		assessor,
		limiters,
		cfg.Weights,
		cfg.Pipeline,
	)
	executor.SetWarnings(warningsService)

	// 7. Start worker pool (before HTTP server)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, executor, companyService)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 8. Retention cleanup loop
	retention := cleanup.NewService(cfg.Retention, dbClient.Client)
	retention.Start(ctx)

	// 9. Start HTTP server (non-blocking)
	httpServer := api.NewServer(dbClient, companyService, analysisService, queue.NewEnqueuer(dbClient.Client), workerPool)
	httpServer.SetWarningsService(warningsService)

	errCh := make(chan error, 1)
	go func() {
		addr := cfg.API.Addr()
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("vetd started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: stop claiming new jobs and wait for active ones
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, incomplete jobs will be orphan-recovered")
	}

	retention.Stop()

	// Stop HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
