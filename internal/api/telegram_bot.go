// Package api provides handlers for external APIs and interfaces
package api

import (
	"context"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/abelzeko/metro-bot/internal/guide"
	"github.com/abelzeko/metro-bot/internal/usecases"
)

const helpText = "Available commands:\n" +
	"/start - Start the bot\n" +
	"/predict [station] - Next trains at a station\n" +
	"/trip [from] | [to] - Travel time, fares and route\n" +
	"/alerts - Current service alerts\n" +
	"/elevators - Elevator and escalator outages\n" +
	"/station [station] - Station address, lines and amenities\n" +
	"/stations - All stations by line\n" +
	"/map - System map overview\n" +
	"/fares - Fare information\n" +
	"/history - Alerts recorded recently\n" +
	"/help - Show this help message\n\n" +
	"You can also just ask, e.g. \"when is the next train at Union Station?\""

// TelegramBot handles interactions with the Telegram API
type TelegramBot struct {
	bot     *tgbotapi.BotAPI
	useCase *usecases.MetroUseCase
}

// NewTelegramBot creates a new Telegram bot handler
func NewTelegramBot(botToken string, useCase *usecases.MetroUseCase) (*TelegramBot, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %v", err)
	}

	return &TelegramBot{
		bot:     bot,
		useCase: useCase,
	}, nil
}

// Start begins listening for and handling Telegram messages until ctx is done
func (t *TelegramBot) Start(ctx context.Context) {
	log.Printf("Authorized on Telegram account %s", t.bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)
	log.Println("Bot is now listening for messages...")

	for {
		select {
		case <-ctx.Done():
			t.bot.StopReceivingUpdates()
			log.Println("Bot stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil {
				continue
			}

			log.Printf("Received message from %s (ID: %d): %s",
				update.Message.From.UserName,
				update.Message.From.ID,
				update.Message.Text)

			t.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage processes a Telegram message
func (t *TelegramBot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	var text string
	if message.IsCommand() {
		text = t.handleCommand(ctx, message.Command(), message.CommandArguments())
	} else {
		log.Printf("Received non-command message from user %s", message.From.UserName)
		text = t.useCase.HandleNaturalLanguageQuery(ctx, message.Text)
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ReplyToMessageID = message.MessageID

	log.Printf("Sending response to user %s", message.From.UserName)
	if _, err := t.bot.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}

// handleCommand processes commands like /start, /predict, etc.
func (t *TelegramBot) handleCommand(ctx context.Context, command, args string) string {
	args = strings.TrimSpace(args)
	log.Printf("Handling /%s command with args '%s'", command, args)

	switch command {
	case "start":
		return "Welcome to the Metro Bot! 🚇 I can tell you when the next train arrives, " +
			"how to get between stations and what is broken right now. Use /help to see all commands."

	case "help":
		return helpText

	case "predict", "next":
		if args == "" {
			return "Please specify a station. Example: /predict Union Station"
		}
		return t.useCase.GetTrainPredictions(ctx, args)

	case "trip", "route":
		from, to, ok := splitTrip(args)
		if !ok {
			return "Please specify two stations. Example: /trip Union Station | Pentagon"
		}
		return t.useCase.GetStationToStationInfo(ctx, from, to)

	case "alerts":
		return t.useCase.GetServiceAlerts(ctx)

	case "elevators":
		return t.useCase.GetElevatorOutages(ctx)

	case "station":
		if args == "" {
			return "Please specify a station. Example: /station Metro Center"
		}
		return t.useCase.GetStationInfo(ctx, args)

	case "stations":
		return t.useCase.GetAllStations(ctx)

	case "map":
		return resourceText("system-map")

	case "fares":
		return resourceText("fares")

	case "history":
		return t.useCase.GetAlertHistory(ctx)

	default:
		log.Printf("Received unknown command /%s", command)
		return "Unknown command. Use /help to see available commands."
	}
}

func resourceText(name string) string {
	r, ok := guide.FindResource(name)
	if !ok {
		return "This document is not available right now."
	}
	return r.Text
}

// splitTrip splits "/trip" arguments into start and destination
func splitTrip(args string) (string, string, bool) {
	for _, sep := range []string{"|", "->", " to "} {
		var from, to string
		var found bool
		if sep == " to " {
			// "to" may appear inside a station name, use the last one
			idx := strings.LastIndex(strings.ToLower(args), sep)
			if idx >= 0 {
				from, to, found = args[:idx], args[idx+len(sep):], true
			}
		} else {
			from, to, found = strings.Cut(args, sep)
		}
		if !found {
			continue
		}
		from, to = strings.TrimSpace(from), strings.TrimSpace(to)
		if from != "" && to != "" {
			return from, to, true
		}
	}
	return "", "", false
}
