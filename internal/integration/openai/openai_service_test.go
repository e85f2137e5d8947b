package openai

import (
	"encoding/json"
	"testing"
)

func TestGenerateSchemaListsAgentFields(t *testing.T) {
	raw, err := json.Marshal(GenerateSchema[AgentResponse]())
	if err != nil {
		t.Fatalf("Failed to marshal schema: %v", err)
	}

	var schema struct {
		Properties           map[string]any `json:"properties"`
		Required             []string       `json:"required"`
		AdditionalProperties any            `json:"additionalProperties"`
	}
	if err := json.Unmarshal(raw, &schema); err != nil {
		t.Fatalf("Failed to decode schema: %v", err)
	}

	for _, field := range []string{"command_name", "station", "from_station", "to_station", "user_message"} {
		if _, ok := schema.Properties[field]; !ok {
			t.Errorf("Schema is missing property %q", field)
		}
	}
	if len(schema.Required) != 5 {
		t.Errorf("Expected all 5 fields to be required for strict mode, got %v", schema.Required)
	}
	if schema.AdditionalProperties != false {
		t.Errorf("Expected additionalProperties=false, got %v", schema.AdditionalProperties)
	}
}

func TestNewOpenAIServiceRequiresKey(t *testing.T) {
	if _, err := NewOpenAIService(""); err == nil {
		t.Error("Expected an error for an empty API key")
	}
}
