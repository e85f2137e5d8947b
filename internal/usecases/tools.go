package usecases

import (
	"context"
	"log"
	"strings"

	"github.com/abelzeko/metro-bot/internal/integration/openai"
)

const (
	ToolTrainPredictions = "get_train_prediction"
	ToolStationToStation = "get_station_to_station_info"
	ToolServiceAlerts    = "get_service_alerts"
	ToolElevatorOutages  = "get_elevator_outages"
	ToolStationInfo      = "get_station_info"
	ToolAllStations      = "get_all_stations"
	ToolAlertHistory     = "get_alert_history"
)

// Argument names understood by the tools
const (
	ArgStation     = "station"
	ArgFromStation = "from_station"
	ArgToStation   = "to_station"
)

// ToolParam describes one string argument of a tool
type ToolParam struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Tool is a named operation callable from any front end
type Tool struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Params      []ToolParam `json:"params"`

	invoke func(ctx context.Context, args map[string]string) string
}

// Invoke runs the tool. Missing arguments are passed as empty strings.
func (t Tool) Invoke(ctx context.Context, args map[string]string) string {
	if args == nil {
		args = map[string]string{}
	}
	return t.invoke(ctx, args)
}

// Tools returns every operation the use case exposes
func (uc *MetroUseCase) Tools() []Tool {
	return []Tool{
		{
			Name:        ToolTrainPredictions,
			Description: "Get real-time train arrival predictions for a Metro station.",
			Params:      []ToolParam{{Name: ArgStation, Description: "Station name or code (e.g. 'Union Station' or 'B03')"}},
			invoke: func(ctx context.Context, args map[string]string) string {
				return uc.GetTrainPredictions(ctx, args[ArgStation])
			},
		},
		{
			Name:        ToolStationToStation,
			Description: "Get travel time, fares and a suggested route between two stations.",
			Params: []ToolParam{
				{Name: ArgFromStation, Description: "Starting station name or code"},
				{Name: ArgToStation, Description: "Destination station name or code"},
			},
			invoke: func(ctx context.Context, args map[string]string) string {
				return uc.GetStationToStationInfo(ctx, args[ArgFromStation], args[ArgToStation])
			},
		},
		{
			Name:        ToolServiceAlerts,
			Description: "Get current service alerts and disruptions for the Metro system.",
			invoke: func(ctx context.Context, _ map[string]string) string {
				return uc.GetServiceAlerts(ctx)
			},
		},
		{
			Name:        ToolElevatorOutages,
			Description: "Get current elevator and escalator outages affecting accessibility.",
			invoke: func(ctx context.Context, _ map[string]string) string {
				return uc.GetElevatorOutages(ctx)
			},
		},
		{
			Name:        ToolStationInfo,
			Description: "Get address, lines and amenities for a Metro station.",
			Params:      []ToolParam{{Name: ArgStation, Description: "Station name or code"}},
			invoke: func(ctx context.Context, args map[string]string) string {
				return uc.GetStationInfo(ctx, args[ArgStation])
			},
		},
		{
			Name:        ToolAllStations,
			Description: "Get a list of all Metro stations organized by line.",
			invoke: func(ctx context.Context, _ map[string]string) string {
				return uc.GetAllStations(ctx)
			},
		},
		{
			Name:        ToolAlertHistory,
			Description: "List service alerts and elevator outages recorded recently.",
			invoke: func(ctx context.Context, _ map[string]string) string {
				return uc.GetAlertHistory(ctx)
			},
		},
	}
}

// FindTool looks a tool up by name
func (uc *MetroUseCase) FindTool(name string) (Tool, bool) {
	for _, t := range uc.Tools() {
		if t.Name == name {
			return t, true
		}
	}
	return Tool{}, false
}

// HandleNaturalLanguageQuery lets the language model pick a tool for free text
func (uc *MetroUseCase) HandleNaturalLanguageQuery(ctx context.Context, query string) string {
	log.Printf("Interpreting natural language query: %s", query)

	if uc.openAIService == nil {
		return "I don't understand that message. Use /help to see the available commands."
	}

	tools := uc.Tools()
	summaries := make([]openai.ToolSummary, 0, len(tools))
	for _, t := range tools {
		summaries = append(summaries, openai.ToolSummary{Name: t.Name, Description: t.Description})
	}

	stations := uc.directory.Stations()
	names := make([]string, 0, len(stations))
	for _, s := range stations {
		names = append(names, s.Name)
	}

	agentResponse, err := uc.openAIService.InterpretUserQuery(ctx, query, summaries, names)
	if err != nil {
		log.Printf("Error interpreting query with OpenAI: %v", err)
		return "Sorry, I'm having trouble understanding right now. Please try again later or use /help."
	}

	log.Printf("Agent response: Command='%s', Station='%s', From='%s', To='%s'",
		agentResponse.CommandName, agentResponse.Station, agentResponse.FromStation, agentResponse.ToStation)

	if agentResponse.CommandName == openai.GeneralQuery {
		return valueOr(agentResponse.UserMessage, "I'm not sure how to help with that. Use /help to see available commands.")
	}

	tool, ok := uc.FindTool(agentResponse.CommandName)
	if !ok {
		log.Printf("OpenAI picked an unknown tool: %s", agentResponse.CommandName)
		return "I'm not sure how to respond to that. You can use /help to see available commands."
	}

	result := tool.Invoke(ctx, map[string]string{
		ArgStation:     agentResponse.Station,
		ArgFromStation: agentResponse.FromStation,
		ArgToStation:   agentResponse.ToStation,
	})

	if msg := strings.TrimSpace(agentResponse.UserMessage); msg != "" {
		return msg + "\n\n" + result
	}
	return result
}
