package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abelzeko/metro-bot/internal/api"
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
	log.Println("Starting Metro bridge server...")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	directory := metro.Default()
	if err := directory.Validate(); err != nil {
		log.Fatalf("Station directory is inconsistent: %v", err)
	}

	client := wmata.NewClient(wmata.Options{
		BaseURL:       cfg.WMATA.BaseURL,
		APIKey:        cfg.WMATA.APIKey,
		Timeout:       cfg.WMATA.Timeout,
		RatePerSecond: cfg.WMATA.RatePerSecond,
	})

	var repo repository.AlertRepository
	sqliteRepo, err := repository.NewSQLiteAlertRepository(cfg.Database.Path)
	if err != nil {
		log.Printf("Alert history disabled: %v", err)
	} else {
		defer sqliteRepo.Close()
		repo = sqliteRepo
	}

	useCase := usecases.NewMetroUseCase(directory, client, repo, nil)
	useCase.SetHistoryWindow(cfg.Watcher.HistoryWindow)

	server := api.NewServer(cfg.Server.Addr, useCase, log.Default())

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	case <-ctx.Done():
		log.Println("Shutdown signal received")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Graceful shutdown failed: %v", err)
		}
	}
}
