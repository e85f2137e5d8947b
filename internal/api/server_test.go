package api

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/abelzeko/metro-bot/internal/integration/wmata"
	"github.com/abelzeko/metro-bot/internal/metro"
	"github.com/abelzeko/metro-bot/internal/usecases"
)

// mockWMATAServer answers the endpoints the bridge tests touch
func mockWMATAServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasPrefix(r.URL.Path, "/StationPrediction.svc/json/GetPrediction/"):
			io.WriteString(w, `{"Trains":[{"Car":"6","DestinationName":"Glenmont","Line":"RD","Min":"4"}]}`)
		case r.URL.Path == "/Incidents.svc/json/Incidents":
			io.WriteString(w, `{"Incidents":[]}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	upstream := mockWMATAServer(t)
	client := wmata.NewClient(wmata.Options{BaseURL: upstream.URL, Timeout: time.Second})
	useCase := usecases.NewMetroUseCase(metro.Default(), client, nil, nil)

	s := NewServer(":0", useCase, log.New(io.Discard, "", 0))
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func doRequest(t *testing.T, method, url, body string) (*http.Response, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read body: %v", err)
	}
	return resp, string(data)
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)

	resp, body := doRequest(t, http.MethodGet, ts.URL+"/healthz", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, `"status":"ok"`) {
		t.Errorf("Unexpected body %q", body)
	}
	if resp.Header.Get("X-Content-Type-Options") != "nosniff" {
		t.Error("Expected security headers")
	}
}

func TestListTools(t *testing.T) {
	ts := newTestServer(t)

	resp, body := doRequest(t, http.MethodGet, ts.URL+"/v1/tools", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var tools []usecases.Tool
	if err := json.Unmarshal([]byte(body), &tools); err != nil {
		t.Fatalf("Failed to decode tools: %v", err)
	}
	if len(tools) != 7 {
		t.Fatalf("Expected 7 tools, got %d", len(tools))
	}
	if tools[0].Name != usecases.ToolTrainPredictions || len(tools[0].Params) != 1 {
		t.Errorf("Unexpected first tool: %+v", tools[0])
	}
}

func TestCallTool(t *testing.T) {
	ts := newTestServer(t)

	resp, body := doRequest(t, http.MethodPost, ts.URL+"/v1/tools/get_train_prediction", `{"station":"Union Station"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", resp.StatusCode, body)
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "text/plain") {
		t.Errorf("Expected text/plain, got %q", resp.Header.Get("Content-Type"))
	}
	want := "🚉 **Union Station** Train Predictions:\n\n🚇 Red Line to Glenmont - 4 minutes (6 cars)"
	if body != want {
		t.Errorf("Expected %q, got %q", want, body)
	}

	// Unknown stations are still a successful call with an explanatory text
	resp, body = doRequest(t, http.MethodPost, ts.URL+"/v1/tools/get_train_prediction", `{"station":"Hogwarts"}`)
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, "not found") {
		t.Errorf("Expected not-found text, got %d %q", resp.StatusCode, body)
	}

	resp, body = doRequest(t, http.MethodPost, ts.URL+"/v1/tools/get_service_alerts", "")
	if resp.StatusCode != http.StatusOK || !strings.HasPrefix(body, "✅ No current service alerts") {
		t.Errorf("Expected empty alerts text, got %d %q", resp.StatusCode, body)
	}

	// Upstream 404 maps to the unavailable message
	resp, body = doRequest(t, http.MethodPost, ts.URL+"/v1/tools/get_all_stations", "{}")
	if resp.StatusCode != http.StatusOK || body != "❌ Unable to get station list." {
		t.Errorf("Expected unavailable text, got %d %q", resp.StatusCode, body)
	}

	resp, _ = doRequest(t, http.MethodGet, ts.URL+"/metrics", "")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected metrics endpoint to answer 200, got %d", resp.StatusCode)
	}
}

func TestCallToolErrors(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := doRequest(t, http.MethodPost, ts.URL+"/v1/tools/launch_rocket", "{}")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown tool, got %d", resp.StatusCode)
	}

	resp, _ = doRequest(t, http.MethodPost, ts.URL+"/v1/tools/get_station_info", `["B03"]`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400 for non-object body, got %d", resp.StatusCode)
	}

	resp, _ = doRequest(t, http.MethodPost, ts.URL+"/v1/tools/get_station_info", `{"station":`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400 for truncated body, got %d", resp.StatusCode)
	}
}

func TestResources(t *testing.T) {
	ts := newTestServer(t)

	resp, body := doRequest(t, http.MethodGet, ts.URL+"/v1/resources", "")
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, "wmata://fares/structure") {
		t.Errorf("Unexpected resource list: %d %s", resp.StatusCode, body)
	}

	resp, body = doRequest(t, http.MethodGet, ts.URL+"/v1/resources/system-map", "")
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, "Metro Center") {
		t.Errorf("Unexpected system map: %d %q", resp.StatusCode, body)
	}

	resp, _ = doRequest(t, http.MethodGet, ts.URL+"/v1/resources/bus-map", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", resp.StatusCode)
	}
}

func TestPrompts(t *testing.T) {
	ts := newTestServer(t)

	resp, body := doRequest(t, http.MethodGet, ts.URL+"/v1/prompts", "")
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, `"rush_hour_strategy"`) {
		t.Errorf("Unexpected prompt list: %d %s", resp.StatusCode, body)
	}

	resp, body = doRequest(t, http.MethodPost, ts.URL+"/v1/prompts/plan_trip", `{"origin":"Union Station","destination":"Pentagon"}`)
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, "from Union Station to Pentagon, departing now") {
		t.Errorf("Unexpected prompt: %d %q", resp.StatusCode, body)
	}

	resp, _ = doRequest(t, http.MethodPost, ts.URL+"/v1/prompts/plan_trip", `{"origin":"Union Station"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing argument, got %d", resp.StatusCode)
	}

	resp, _ = doRequest(t, http.MethodPost, ts.URL+"/v1/prompts/write_poem", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", resp.StatusCode)
	}
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t)

	req, _ := http.NewRequest(http.MethodOptions, ts.URL+"/v1/tools/get_service_alerts", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Preflight failed: %v", err)
	}
	resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Expected Access-Control-Allow-Origin *, got %q", got)
	}
}
