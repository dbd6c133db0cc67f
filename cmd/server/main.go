package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"claydash/internal/config"
	"claydash/internal/filters"
	"claydash/internal/jobs"
	"claydash/internal/loader"
	"claydash/internal/metrics"
	"claydash/internal/server"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cfg := config.Load()

	// Resolve dataset file locations
	datasets, err := config.LoadDatasets(cfg.DatasetsFile)
	if err != nil {
		log.Fatalf("Failed to read dataset config: %v", err)
	}
	companiesPath, decisionMakersPath, jobsPath := datasets.Paths(cfg.DataDir)

	// Initialize the dataset loader and register metrics
	l := loader.New(companiesPath, decisionMakersPath, jobsPath)
	metrics.Init(l)

	// Warm the cache so a broken dataset surfaces at startup, not on the
	// first request. The server still starts; /api/health reports the state.
	if raw, _, err := l.LoadAll(); err != nil {
		log.Printf("Warning: initial dataset load failed: %v", err)
	} else {
		log.Printf("Loaded %d companies, %d decision makers, %d job postings",
			len(raw.Companies), len(raw.DecisionMakers), len(raw.Jobs))
	}

	// Pick up replaced CSV exports without a manual refresh
	if cfg.WatchIntervalSec > 0 {
		watcher := jobs.NewDatasetWatcher(l, time.Duration(cfg.WatchIntervalSec)*time.Second,
			companiesPath, decisionMakersPath, jobsPath)
		go watcher.Start(ctx)
	}

	// Per-session filter states
	registry := filters.NewRegistry()

	srv := server.New(cfg)
	if err := srv.RegisterRoutes(ctx, l, registry); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
