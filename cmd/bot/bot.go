package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/abelzeko/metro-bot/internal/api"
	"github.com/abelzeko/metro-bot/internal/config"
	"github.com/abelzeko/metro-bot/internal/integration/openai"
	"github.com/abelzeko/metro-bot/internal/integration/wmata"
	"github.com/abelzeko/metro-bot/internal/metro"
	"github.com/abelzeko/metro-bot/internal/repository"
	"github.com/abelzeko/metro-bot/internal/usecases"
)

func main() {
	// Configure logging
	log.SetOutput(os.Stdout)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Starting Metro Bot...")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Telegram.BotToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN environment variable is not set")
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

	// The alert log is written by the watcher; the bot only reads it
	var repo repository.AlertRepository
	sqliteRepo, err := repository.NewSQLiteAlertRepository(cfg.Database.Path)
	if err != nil {
		log.Printf("Alert history disabled: %v", err)
	} else {
		defer sqliteRepo.Close()
		repo = sqliteRepo
	}

	// Free text falls back to a help message without an OpenAI key
	var agent openai.OpenAIService
	if cfg.OpenAI.APIKey != "" {
		agent, err = openai.NewOpenAIService(cfg.OpenAI.APIKey)
		if err != nil {
			log.Fatalf("Failed to initialize OpenAI service: %v", err)
		}
	} else {
		log.Println("OPENAI_API_KEY is not set, natural language queries are disabled")
	}

	useCase := usecases.NewMetroUseCase(directory, client, repo, agent)
	useCase.SetHistoryWindow(cfg.Watcher.HistoryWindow)

	telegramBot, err := api.NewTelegramBot(cfg.Telegram.BotToken, useCase)
	if err != nil {
		log.Fatalf("Failed to initialize Telegram bot: %v", err)
	}

	telegramBot.Start(ctx)
}
