// Package usecases contains the application's business logic
package usecases

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/abelzeko/metro-bot/internal/entities"
	"github.com/abelzeko/metro-bot/internal/integration/openai"
	"github.com/abelzeko/metro-bot/internal/integration/wmata"
	"github.com/abelzeko/metro-bot/internal/metrics"
	"github.com/abelzeko/metro-bot/internal/metro"
	"github.com/abelzeko/metro-bot/internal/repository"
)

// DefaultHistoryWindow is how far back the alert history looks
const DefaultHistoryWindow = 24 * time.Hour

// Outcome classifies a single handler invocation
type Outcome string

const (
	OutcomeOK          Outcome = "ok"
	OutcomeNotFound    Outcome = "not_found"
	OutcomeUnavailable Outcome = "unavailable"
	OutcomeEmpty       Outcome = "empty"
)

// TransitAPI is the part of the WMATA client the handlers depend on
type TransitAPI interface {
	Predictions(ctx context.Context, stationCode string) (*entities.PredictionResponse, error)
	StationToStation(ctx context.Context, from, to string) (*entities.StationToStationResponse, error)
	Incidents(ctx context.Context) (*entities.IncidentResponse, error)
	ElevatorIncidents(ctx context.Context) (*entities.ElevatorIncidentResponse, error)
	StationInfo(ctx context.Context, stationCode string) (*entities.StationInfo, error)
	Stations(ctx context.Context) (*entities.StationListResponse, error)
}

var _ TransitAPI = (*wmata.Client)(nil)

// MetroUseCase composes the station directory, the WMATA API and the alert
// log into user-facing text. Every handler returns text, whatever happens.
type MetroUseCase struct {
	directory     *metro.Directory
	api           TransitAPI
	repo          repository.AlertRepository
	openAIService openai.OpenAIService
	historyWindow time.Duration
	now           func() time.Time
}

// NewMetroUseCase creates a new metro use case. repo and openAIService may be
// nil; the features that need them then answer with a fixed message.
func NewMetroUseCase(directory *metro.Directory, api TransitAPI, repo repository.AlertRepository, openAIService openai.OpenAIService) *MetroUseCase {
	return &MetroUseCase{
		directory:     directory,
		api:           api,
		repo:          repo,
		openAIService: openAIService,
		historyWindow: DefaultHistoryWindow,
		now:           time.Now,
	}
}

// SetHistoryWindow changes how far back GetAlertHistory looks
func (uc *MetroUseCase) SetHistoryWindow(window time.Duration) {
	if window > 0 {
		uc.historyWindow = window
	}
}

// Directory returns the station directory used by the use case
func (uc *MetroUseCase) Directory() *metro.Directory {
	return uc.directory
}

func observe(tool string, text string, outcome Outcome) string {
	metrics.ObserveTool(tool, string(outcome))
	return text
}

// GetTrainPredictions returns live arrivals for a station
func (uc *MetroUseCase) GetTrainPredictions(ctx context.Context, station string) string {
	code, ok := uc.directory.Resolve(station)
	if !ok {
		return observe(ToolTrainPredictions, fmt.Sprintf("❌ Station '%s' not found. Please check the spelling or use a valid station name.", station), OutcomeNotFound)
	}

	log.Printf("Fetching train predictions for station %s", code)
	data, err := uc.api.Predictions(ctx, code)
	if err != nil || data.Trains == nil {
		logUpstreamFailure("train predictions", err)
		return observe(ToolTrainPredictions, "❌ Unable to get train predictions. The service may be unavailable.", OutcomeUnavailable)
	}

	if len(data.Trains) == 0 {
		return observe(ToolTrainPredictions, "ℹ️ No train predictions available. Metro may be closed or experiencing service disruptions.", OutcomeEmpty)
	}

	predictions := make([]string, 0, len(data.Trains))
	for _, train := range data.Trains {
		predictions = append(predictions, metro.FormatPrediction(train))
	}

	text := fmt.Sprintf("🚉 **%s** Train Predictions:\n\n", uc.directory.Name(code)) + strings.Join(predictions, "\n")
	return observe(ToolTrainPredictions, text, OutcomeOK)
}

// GetStationToStationInfo returns travel time, fares and a suggested route
func (uc *MetroUseCase) GetStationToStationInfo(ctx context.Context, fromStation, toStation string) string {
	fromCode, ok := uc.directory.Resolve(fromStation)
	if !ok {
		return observe(ToolStationToStation, fmt.Sprintf("❌ Starting station '%s' not found.", fromStation), OutcomeNotFound)
	}
	toCode, ok := uc.directory.Resolve(toStation)
	if !ok {
		return observe(ToolStationToStation, fmt.Sprintf("❌ Destination station '%s' not found.", toStation), OutcomeNotFound)
	}

	if fromCode == toCode {
		return observe(ToolStationToStation, "ℹ️ You're already at your destination!", OutcomeOK)
	}

	log.Printf("Fetching travel information from %s to %s", fromCode, toCode)
	data, err := uc.api.StationToStation(ctx, fromCode, toCode)
	if err != nil || data.StationToStationInfos == nil {
		logUpstreamFailure("station to station info", err)
		return observe(ToolStationToStation, "❌ Unable to get travel information between these stations.", OutcomeUnavailable)
	}

	if len(data.StationToStationInfos) == 0 {
		return observe(ToolStationToStation, "❌ No travel information available for this route.", OutcomeEmpty)
	}

	info := data.StationToStationInfos[0]

	var result strings.Builder
	result.WriteString(fmt.Sprintf("🗺️ **Travel from %s to %s**\n\n", uc.directory.Name(fromCode), uc.directory.Name(toCode)))

	if info.RailTime > 0 {
		result.WriteString(fmt.Sprintf("⏱️ **Estimated travel time:** %d minutes\n", info.RailTime))
	}
	if info.CompositeMiles > 0 {
		result.WriteString(fmt.Sprintf("📏 **Distance:** %.2f miles\n", info.CompositeMiles))
	}
	if info.RailFare.PeakTime > 0 {
		result.WriteString(fmt.Sprintf("💳 **Peak fare:** $%.2f\n", info.RailFare.PeakTime))
	}
	if info.RailFare.OffPeakTime > 0 {
		result.WriteString(fmt.Sprintf("💳 **Off-peak fare:** $%.2f\n", info.RailFare.OffPeakTime))
	}
	if info.RailFare.SeniorDisabled > 0 {
		result.WriteString(fmt.Sprintf("💳 **Senior/disabled fare:** $%.2f\n", info.RailFare.SeniorDisabled))
	}

	if steps, ok := uc.directory.BuildRoute(fromCode, toCode); ok {
		result.WriteString("\n📍 **Recommended route:**\n")
		result.WriteString(FormatRoute(steps))
	} else {
		result.WriteString("\n⚠️ **Note:** This route may require transfers.\n")
		result.WriteString("Check service alerts and plan your connections at major transfer stations:\n")
		result.WriteString("• Metro Center (Red/Blue/Orange/Silver)\n")
		result.WriteString("• Gallery Place (Red/Green/Yellow)\n")
		result.WriteString("• L'Enfant Plaza (Blue/Orange/Silver/Green/Yellow)\n")
	}

	result.WriteString("\n💡 **Travel tips:**\n")
	result.WriteString("• Check train predictions before departing\n")
	result.WriteString("• Stand right, walk left on escalators\n")
	result.WriteString("• Consider checking service alerts before your trip")

	return observe(ToolStationToStation, result.String(), OutcomeOK)
}

// FormatRoute renders route steps as a numbered list
func FormatRoute(steps []entities.RouteStep) string {
	var result strings.Builder
	for i, step := range steps {
		line := metro.LineLabel(step.Line)
		switch step.Action {
		case entities.ActionStart, entities.ActionBoard:
			result.WriteString(fmt.Sprintf("%d. Board %s at **%s**\n", i+1, line, step.Name))
		case entities.ActionTransfer:
			result.WriteString(fmt.Sprintf("%d. Transfer at **%s**, leaving the %s\n", i+1, step.Name, line))
		case entities.ActionTransferTo:
			result.WriteString(fmt.Sprintf("%d. Transfer at **%s** from %s to %s\n", i+1, step.Name, line, metro.LineLabel(step.NextLine)))
		case entities.ActionArrive:
			result.WriteString(fmt.Sprintf("%d. Arrive at **%s** on %s\n", i+1, step.Name, line))
		}
	}
	return result.String()
}

// GetServiceAlerts returns current rail incidents
func (uc *MetroUseCase) GetServiceAlerts(ctx context.Context) string {
	log.Println("Fetching service alerts")
	data, err := uc.api.Incidents(ctx)
	if err != nil || data.Incidents == nil {
		logUpstreamFailure("service alerts", err)
		return observe(ToolServiceAlerts, "❌ Unable to get service alerts.", OutcomeUnavailable)
	}

	if len(data.Incidents) == 0 {
		return observe(ToolServiceAlerts, "✅ No current service alerts. All Metro services are operating normally.", OutcomeEmpty)
	}

	alerts := make([]string, 0, len(data.Incidents))
	for _, incident := range data.Incidents {
		alert := fmt.Sprintf("⚠️ **%s**", valueOr(incident.IncidentType, "Unknown"))
		if names := lineNames(incident.LinesAffected); len(names) > 0 {
			alert += " - " + strings.Join(names, ", ")
		}
		alert += fmt.Sprintf("\n%s\n", valueOr(incident.Description, "No description available"))
		alerts = append(alerts, alert)
	}

	return observe(ToolServiceAlerts, "🚨 **Current Metro Service Alerts:**\n\n"+strings.Join(alerts, "\n"), OutcomeOK)
}

// GetElevatorOutages returns current elevator and escalator outages
func (uc *MetroUseCase) GetElevatorOutages(ctx context.Context) string {
	log.Println("Fetching elevator and escalator outages")
	data, err := uc.api.ElevatorIncidents(ctx)
	if err != nil || data.ElevatorIncidents == nil {
		logUpstreamFailure("elevator outages", err)
		return observe(ToolElevatorOutages, "❌ Unable to get elevator status information.", OutcomeUnavailable)
	}

	if len(data.ElevatorIncidents) == 0 {
		return observe(ToolElevatorOutages, "✅ All elevators and escalators are currently operational.", OutcomeEmpty)
	}

	outages := make([]string, 0, len(data.ElevatorIncidents))
	for _, outage := range data.ElevatorIncidents {
		alert := fmt.Sprintf("♿ **%s** - %s Issue\n", uc.outageStationName(outage), valueOr(outage.UnitType, "Equipment"))
		if outage.LocationDescription != "" {
			alert += fmt.Sprintf("📍 %s\n", outage.LocationDescription)
		}
		alert += fmt.Sprintf("%s\n", valueOr(outage.SymptomDescription, "No details available"))
		outages = append(outages, alert)
	}

	return observe(ToolElevatorOutages, "🛗 **Elevator & Escalator Outages:**\n\n"+strings.Join(outages, "\n"), OutcomeOK)
}

func (uc *MetroUseCase) outageStationName(outage entities.ElevatorIncident) string {
	if s, ok := uc.directory.Station(outage.StationCode); ok {
		return s.Name
	}
	return valueOr(outage.StationName, "Unknown Station")
}

// GetStationInfo returns address, lines and amenities for a station
func (uc *MetroUseCase) GetStationInfo(ctx context.Context, station string) string {
	code, ok := uc.directory.Resolve(station)
	if !ok {
		return observe(ToolStationInfo, fmt.Sprintf("❌ Station '%s' not found.", station), OutcomeNotFound)
	}

	log.Printf("Fetching station information for %s", code)
	data, err := uc.api.StationInfo(ctx, code)
	if err != nil {
		logUpstreamFailure("station information", err)
		return observe(ToolStationInfo, "❌ Unable to get station information.", OutcomeUnavailable)
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf("🚉 **%s** Station Information\n\n", valueOr(data.Name, "Unknown Station")))

	if addr := data.Address; addr != nil && addr.Street != "" {
		result.WriteString("📍 **Address:** " + addr.Street)
		if addr.City != "" {
			result.WriteString(", " + addr.City)
		}
		if addr.State != "" {
			result.WriteString(", " + addr.State)
		}
		if addr.Zip != "" {
			result.WriteString(" " + addr.Zip)
		}
		result.WriteString("\n")
	}

	if lines := uc.directory.LinesOf(code); len(lines) > 0 {
		names := make([]string, 0, len(lines))
		for _, l := range lines {
			names = append(names, metro.LineLabel(l))
		}
		result.WriteString(fmt.Sprintf("🚇 **Lines:** %s\n", strings.Join(names, ", ")))
	}

	result.WriteString("\n🏢 **Station Features:**\n")
	result.WriteString("• Fully accessible (all Metro stations are ADA compliant)\n")
	result.WriteString("• SmarTrip and contactless payment accepted\n")
	result.WriteString("• Free WiFi available\n")

	if data.Parking != nil && data.Parking.TotalCount > 0 {
		result.WriteString(fmt.Sprintf("🅿️ **Parking:** %d spaces\n", data.Parking.TotalCount))
	}

	result.WriteString("\n💡 **Getting Here:**\n")
	result.WriteString("• Check train predictions before traveling\n")
	result.WriteString("• Plan for potential delays during rush hours\n")
	result.WriteString("• Consider checking service alerts before your trip")

	return observe(ToolStationInfo, result.String(), OutcomeOK)
}

// GetAllStations returns every station grouped by line
func (uc *MetroUseCase) GetAllStations(ctx context.Context) string {
	log.Println("Fetching station list")
	data, err := uc.api.Stations(ctx)
	if err != nil || data.Stations == nil {
		logUpstreamFailure("station list", err)
		return observe(ToolAllStations, "❌ Unable to get station list.", OutcomeUnavailable)
	}

	if len(data.Stations) == 0 {
		return observe(ToolAllStations, "ℹ️ The station list is empty right now. Please try again later.", OutcomeEmpty)
	}

	byLine := make(map[string]map[string]bool)
	for _, station := range data.Stations {
		entry := fmt.Sprintf("%s (%s)", valueOr(station.Name, "Unknown"), station.Code)
		for _, line := range station.LineCodes() {
			if _, known := metro.LineName(line); !known {
				continue
			}
			if byLine[line] == nil {
				byLine[line] = make(map[string]bool)
			}
			byLine[line][entry] = true
		}
	}

	var result strings.Builder
	result.WriteString("🚇 **Metro Station Directory**\n\n")

	for _, line := range metro.ListingOrder {
		entries, ok := byLine[line]
		if !ok {
			continue
		}
		names := make([]string, 0, len(entries))
		for e := range entries {
			names = append(names, e)
		}
		sort.Strings(names)

		result.WriteString(fmt.Sprintf("**%s:**\n", metro.LineLabel(line)))
		for _, n := range names {
			result.WriteString("• " + n + "\n")
		}
		result.WriteString("\n")
	}

	result.WriteString("💡 **Usage Tips:**\n")
	result.WriteString("• Use station codes (like 'B03') or full names\n")
	result.WriteString("• Major transfer stations connect multiple lines\n")
	result.WriteString("• All stations are fully accessible")

	return observe(ToolAllStations, result.String(), OutcomeOK)
}

// GetAlertHistory lists alerts recorded by the watcher within the history window
func (uc *MetroUseCase) GetAlertHistory(ctx context.Context) string {
	if uc.repo == nil {
		return observe(ToolAlertHistory, "ℹ️ Alert history is not enabled on this server.", OutcomeUnavailable)
	}

	records, err := uc.repo.GetAlertsSince(uc.now().Add(-uc.historyWindow))
	if err != nil {
		log.Printf("Error reading alert history: %v", err)
		return observe(ToolAlertHistory, "❌ Unable to read the alert history.", OutcomeUnavailable)
	}

	window := formatWindow(uc.historyWindow)
	if len(records) == 0 {
		return observe(ToolAlertHistory, fmt.Sprintf("✅ No alerts recorded in the last %s.", window), OutcomeEmpty)
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf("🗂️ **Alerts recorded in the last %s:**\n\n", window))
	for _, r := range records {
		icon := "⚠️"
		if r.Kind == entities.AlertKindElevator {
			icon = "♿"
		}
		result.WriteString(fmt.Sprintf("%s **%s**", icon, r.Title))
		if names := lineNames(r.Lines); len(names) > 0 {
			result.WriteString(" - " + strings.Join(names, ", "))
		}
		result.WriteString("\n")
		if r.Description != "" {
			result.WriteString(r.Description + "\n")
		}
		result.WriteString(fmt.Sprintf("🕒 First seen: %s, last seen: %s\n\n",
			r.FirstSeen.Format("2006-01-02 15:04"), r.LastSeen.Format("2006-01-02 15:04")))
	}

	if last, err := uc.repo.GetLastUpdateTime(); err == nil && !last.IsZero() {
		result.WriteString(fmt.Sprintf("🔄 Last refreshed: %s", last.Format("2006-01-02 15:04:05")))
	}

	return observe(ToolAlertHistory, strings.TrimRight(result.String(), "\n"), OutcomeOK)
}

func logUpstreamFailure(what string, err error) {
	switch {
	case err == nil:
		log.Printf("Error fetching %s: response is missing the expected data", what)
	case errors.Is(err, wmata.ErrUnavailable):
		log.Printf("Error fetching %s: %v", what, err)
	default:
		log.Printf("Unexpected error fetching %s: %v", what, err)
	}
}

// lineNames converts "RD;BL;" style lists into display names
func lineNames(codes string) []string {
	var names []string
	for _, code := range strings.Split(codes, ";") {
		code = strings.TrimSpace(code)
		if code != "" {
			names = append(names, metro.LineLabel(code))
		}
	}
	return names
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func formatWindow(d time.Duration) string {
	if d%time.Hour == 0 {
		hours := int(d / time.Hour)
		if hours == 1 {
			return "hour"
		}
		return fmt.Sprintf("%d hours", hours)
	}
	return d.String()
}
