package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"github.com/abelzeko/metro-bot/internal/config"
	"github.com/abelzeko/metro-bot/internal/integration/wmata"
	"github.com/abelzeko/metro-bot/internal/metro"
	"github.com/abelzeko/metro-bot/internal/repository"
	"github.com/abelzeko/metro-bot/internal/usecases"
)

func main() {
	// Configure logging
	log.SetOutput(os.Stdout)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Starting Metro alert watcher...")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	repo, err := repository.NewSQLiteAlertRepository(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize repository: %v", err)
	}
	defer repo.Close()

	if last, err := repo.GetLastUpdateTime(); err == nil && !last.IsZero() {
		log.Printf("Alert log was last refreshed at %s", last.Format("2006-01-02 15:04:05"))
	}

	client := wmata.NewClient(wmata.Options{
		BaseURL:       cfg.WMATA.BaseURL,
		APIKey:        cfg.WMATA.APIKey,
		Timeout:       cfg.WMATA.Timeout,
		RatePerSecond: cfg.WMATA.RatePerSecond,
	})

	useCase := usecases.NewMetroUseCase(metro.Default(), client, repo, nil)

	refresh := func() {
		if _, err := useCase.RefreshAlertLog(ctx); err != nil {
			log.Printf("Alert log refresh failed: %v", err)
		}
	}

	// Run immediately on startup
	refresh()

	c := cron.New()
	if _, err := c.AddFunc(cfg.Watcher.Schedule, refresh); err != nil {
		log.Fatalf("Failed to set up cron job: %v", err)
	}

	log.Printf("Watcher has been scheduled with %q", cfg.Watcher.Schedule)
	c.Start()

	<-ctx.Done()
	log.Println("Shutdown signal received, waiting for running refresh...")
	<-c.Stop().Done()
}
