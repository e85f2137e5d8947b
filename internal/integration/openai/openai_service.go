package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// GeneralQuery is the command name used when no tool applies
const GeneralQuery = "GeneralQuery"

// AgentResponse defines the structured output from the OpenAI agent.
type AgentResponse struct {
	CommandName string `json:"command_name" jsonschema_description:"The tool to run, one of the listed tool names, or GeneralQuery"`
	Station     string `json:"station" jsonschema_description:"The station the user asked about, for single-station tools"`
	FromStation string `json:"from_station" jsonschema_description:"The starting station, for trip tools"`
	ToStation   string `json:"to_station" jsonschema_description:"The destination station, for trip tools"`
	UserMessage string `json:"user_message" jsonschema_description:"A short message to show back to the user in their original language"`
}

// ToolSummary is what the agent is told about an available tool
type ToolSummary struct {
	Name        string
	Description string
}

// OpenAIService defines the interface for interacting with the OpenAI agent.
type OpenAIService interface {
	InterpretUserQuery(ctx context.Context, userMessage string, tools []ToolSummary, stations []string) (*AgentResponse, error)
}

// openAIServiceImpl implements the OpenAIService interface.
type openAIServiceImpl struct {
	client openai.Client
	schema interface{}
}

// GenerateSchema generates a JSON schema for a given type.
func GenerateSchema[T any]() interface{} {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)
	return schema
}

// NewOpenAIService creates and initializes a new OpenAIService.
func NewOpenAIService(apiKey string) (OpenAIService, error) {
	if apiKey == "" {
		return nil, errors.New("OpenAI API key is not set")
	}
	client := openai.NewClient(option.WithAPIKey(apiKey))
	schema := GenerateSchema[AgentResponse]()

	return &openAIServiceImpl{
		client: client,
		schema: schema,
	}, nil
}

// InterpretUserQuery sends a message to the OpenAI agent and returns the structured response.
func (s *openAIServiceImpl) InterpretUserQuery(ctx context.Context, userMessage string, tools []ToolSummary, stations []string) (*AgentResponse, error) {
	var toolList strings.Builder
	for _, t := range tools {
		toolList.WriteString(fmt.Sprintf("- %s: %s\n", t.Name, t.Description))
	}

	systemPrompt := fmt.Sprintf(`You are a friendly Washington DC Metro guide. You help riders with live train
predictions, trip planning between stations, service alerts, elevator outages and station details.

Available tools:
%s
Known stations: %s

Behavior:
1. If the user wants something one of the tools provides:
   - command_name = the tool name
   - station = the station for single-station tools, using the closest name from the list
   - from_station / to_station = the trip endpoints for trip tools
   - leave any field that does not apply as an empty string
   - user_message: a one-line confirmation in the user's language
2. Otherwise (greetings, small talk, general Metro questions):
   - command_name = "%s"
   - all station fields empty
   - user_message: a helpful short answer in the user's language

Output **strictly** in JSON.`, toolList.String(), strings.Join(stations, ", "), GeneralQuery)

	schemaParam := openai.ResponseFormatJSONSchemaJSONSchemaParam{
		Name:        "agent_response",
		Description: openai.String("Structured response containing the tool to run, its station arguments, and a user message"),
		Schema:      s.schema,
		Strict:      openai.Bool(true),
	}

	respFormat := openai.ChatCompletionNewParamsResponseFormatUnion{
		OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{JSONSchema: schemaParam},
	}

	chat, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userMessage),
		},
		ResponseFormat: respFormat,
		Model:          openai.ChatModelGPT4o,
	})

	if err != nil {
		return nil, fmt.Errorf("error calling OpenAI API: %w", err)
	}

	if len(chat.Choices) == 0 || chat.Choices[0].Message.Content == "" {
		return nil, errors.New("received empty response from OpenAI")
	}

	var agentResp AgentResponse
	err = json.Unmarshal([]byte(chat.Choices[0].Message.Content), &agentResp)
	if err != nil {
		log.Printf("Failed to unmarshal OpenAI response: %s\nRaw response: %s", err, chat.Choices[0].Message.Content)
		return nil, fmt.Errorf("error unmarshalling OpenAI response: %w", err)
	}

	return &agentResp, nil
}
