package metro

import (
	"strings"
	"testing"

	"github.com/abelzeko/metro-bot/internal/entities"
)

func TestDefaultDirectoryIsValid(t *testing.T) {
	d := Default()
	if err := d.Validate(); err != nil {
		t.Fatalf("Default directory is invalid: %v", err)
	}
	if got := len(d.Stations()); got != 98 {
		t.Errorf("Expected 98 stations, got %d", got)
	}
	for _, hub := range MajorHubs {
		if !d.IsHub(hub) {
			t.Errorf("Expected %s to be a hub", hub)
		}
	}
}

func TestValidateRejectsBrokenTables(t *testing.T) {
	t.Run("station without lines", func(t *testing.T) {
		d := NewDirectory([]entities.Station{{ID: "X01", Name: "Nowhere"}}, nil, nil)
		if err := d.Validate(); err == nil {
			t.Error("Expected an error for a station without lines")
		}
	})

	t.Run("unknown line", func(t *testing.T) {
		d := NewDirectory([]entities.Station{{ID: "X01", Name: "Nowhere", Lines: []string{"PK"}}}, nil, nil)
		if err := d.Validate(); err == nil {
			t.Error("Expected an error for an unknown line")
		}
	})

	t.Run("duplicate code", func(t *testing.T) {
		d := NewDirectory([]entities.Station{
			{ID: "X01", Name: "One", Lines: []string{"RD"}},
			{ID: "X01", Name: "Two", Lines: []string{"RD"}},
		}, nil, nil)
		if err := d.Validate(); err == nil {
			t.Error("Expected an error for duplicate codes")
		}
	})
}

func TestResolveEveryStation(t *testing.T) {
	d := Default()
	for _, s := range d.Stations() {
		if code, ok := d.Resolve(s.Name); !ok || code != s.ID {
			t.Errorf("Resolve(%q) = %q, %v; want %q", s.Name, code, ok, s.ID)
		}
		for _, in := range []string{s.ID, strings.ToLower(s.ID)} {
			if code, ok := d.Resolve(in); !ok || code != s.ID {
				t.Errorf("Resolve(%q) = %q, %v; want %q", in, code, ok, s.ID)
			}
		}
	}
}

func TestResolvePartialNames(t *testing.T) {
	d := Default()
	tests := []struct {
		input string
		want  string
	}{
		{"Union Station", "B03"},
		{"Pentagon", "C07"},
		{"Union", "B03"},
		{"shady", "A15"},
		{"Glenm", "B11"},
		{"  Rosslyn  ", "C05"},
		// Ties go to the first station in directory order
		{"Farragut", "A02"},
		{"pentagon", "C07"},
		{"airport", "C10"},
	}

	for _, tt := range tests {
		code, ok := d.Resolve(tt.input)
		if !ok || code != tt.want {
			t.Errorf("Resolve(%q) = %q, %v; want %q", tt.input, code, ok, tt.want)
		}
	}
}

func TestResolveNotFound(t *testing.T) {
	d := Default()
	for _, input := range []string{"", "   ", "xyzzy", "Z99", "Hogwarts"} {
		if code, ok := d.Resolve(input); ok {
			t.Errorf("Resolve(%q) = %q; expected not found", input, code)
		}
	}
}

func TestBuildRouteSameLine(t *testing.T) {
	d := Default()

	steps, ok := d.BuildRoute("A03", "A15")
	if !ok || len(steps) != 2 {
		t.Fatalf("Expected a 2-step route, got %v (ok=%v)", steps, ok)
	}
	if steps[0].Line != "RD" || steps[1].Line != "RD" {
		t.Errorf("Expected both steps on RD, got %s and %s", steps[0].Line, steps[1].Line)
	}
	if steps[0].Name != "Dupont Circle" || steps[1].Name != "Shady Grove" {
		t.Errorf("Unexpected station names: %s, %s", steps[0].Name, steps[1].Name)
	}

	// Several shared lines: the smallest code wins
	steps, ok = d.BuildRoute("C01", "C05")
	if !ok || steps[0].Line != "BL" {
		t.Errorf("Expected BL for Metro Center to Rosslyn, got %v", steps)
	}
}

func TestBuildRoutePrefersNonHubTransfer(t *testing.T) {
	d := Default()

	// Gallery Place (hub) comes first in the table, Fort Totten must win
	steps, ok := d.BuildRoute("A15", "E02")
	if !ok || len(steps) != 3 {
		t.Fatalf("Expected a 3-step route, got %v (ok=%v)", steps, ok)
	}
	transfer := steps[1]
	if transfer.Station != "E06" || transfer.Action != entities.ActionTransferTo {
		t.Errorf("Expected transfer_to at E06, got %+v", transfer)
	}
	if transfer.Line != "RD" || transfer.NextLine != "GR" {
		t.Errorf("Expected RD -> GR, got %s -> %s", transfer.Line, transfer.NextLine)
	}
	if steps[2].Line != "GR" {
		t.Errorf("Expected arrival on GR, got %s", steps[2].Line)
	}
}

func TestBuildRouteFallsBackToHub(t *testing.T) {
	d := Default()

	// Only Metro Center links the Red Line with Blue/Orange/Silver
	steps, ok := d.BuildRoute("A03", "C05")
	if !ok || len(steps) != 3 {
		t.Fatalf("Expected a 3-step route, got %v (ok=%v)", steps, ok)
	}
	if steps[1].Station != "C01" || steps[1].Line != "RD" || steps[1].NextLine != "BL" {
		t.Errorf("Expected transfer at C01 from RD to BL, got %+v", steps[1])
	}
}

func TestBuildRouteNoRoute(t *testing.T) {
	stations := []entities.Station{
		{ID: "X01", Name: "Red End", Lines: []string{"RD"}},
		{ID: "X02", Name: "Blue End", Lines: []string{"BL"}},
		{ID: "X03", Name: "Green End", Lines: []string{"GR"}},
	}
	d := NewDirectory(stations, nil, nil)

	if steps, ok := d.BuildRoute("X01", "X02"); ok {
		t.Errorf("Expected no route, got %v", steps)
	}
	if steps, ok := d.BuildRoute("X01", "NOPE"); ok {
		t.Errorf("Expected no route to an unknown station, got %v", steps)
	}

	// Adding a hub makes it reachable, even though it is the only candidate
	withHub := NewDirectory(append(stations, entities.Station{ID: "X04", Name: "Hub", Lines: []string{"BL", "RD"}}), []string{"X04"}, nil)
	steps, ok := withHub.BuildRoute("X01", "X02")
	if !ok || steps[1].Station != "X04" {
		t.Errorf("Expected transfer at hub X04, got %v (ok=%v)", steps, ok)
	}
}

func TestBuildRouteInvariantsForAllPairs(t *testing.T) {
	d := Default()
	precomputed := make(map[[2]string]bool)
	for _, r := range CommonRoutes {
		precomputed[[2]string{r.From, r.To}] = true
		precomputed[[2]string{r.To, r.From}] = true
	}

	stations := d.Stations()
	for _, from := range stations {
		for _, to := range stations {
			if from.ID == to.ID || precomputed[[2]string{from.ID, to.ID}] {
				continue
			}

			steps, ok := d.BuildRoute(from.ID, to.ID)
			if !ok {
				t.Errorf("No route from %s to %s", from.ID, to.ID)
				continue
			}
			first, last := steps[0], steps[len(steps)-1]
			if first.Action != entities.ActionStart || first.Station != from.ID {
				t.Errorf("%s->%s: bad first step %+v", from.ID, to.ID, first)
			}
			if last.Action != entities.ActionArrive || last.Station != to.ID {
				t.Errorf("%s->%s: bad last step %+v", from.ID, to.ID, last)
			}

			if _, shared := commonLine(from.Lines, to.Lines); shared {
				if len(steps) != 2 || first.Line != last.Line || !from.HasLine(first.Line) || !to.HasLine(last.Line) {
					t.Errorf("%s->%s: expected 2 steps on a shared line, got %+v", from.ID, to.ID, steps)
				}
				continue
			}

			if len(steps) != 3 {
				t.Errorf("%s->%s: expected 3 steps, got %d", from.ID, to.ID, len(steps))
				continue
			}
			mid := steps[1]
			transfer, _ := d.Station(mid.Station)
			if mid.Action != entities.ActionTransferTo {
				t.Errorf("%s->%s: middle step is %s", from.ID, to.ID, mid.Action)
			}
			if !from.HasLine(mid.Line) || !transfer.HasLine(mid.Line) {
				t.Errorf("%s->%s: line %s does not connect origin and %s", from.ID, to.ID, mid.Line, mid.Station)
			}
			if !to.HasLine(mid.NextLine) || !transfer.HasLine(mid.NextLine) {
				t.Errorf("%s->%s: next line %s does not connect %s and destination", from.ID, to.ID, mid.NextLine, mid.Station)
			}
		}
	}
}

func TestCommonRouteUnionStationToPentagon(t *testing.T) {
	d := Default()

	from, _ := d.Resolve("Union Station")
	to, _ := d.Resolve("Pentagon")
	if from != "B03" || to != "C07" {
		t.Fatalf("Resolved %s -> %s, want B03 -> C07", from, to)
	}

	steps, ok := d.BuildRoute(from, to)
	if !ok || len(steps) != 4 {
		t.Fatalf("Expected the precomputed 4-step route, got %v (ok=%v)", steps, ok)
	}
	want := []entities.Action{entities.ActionStart, entities.ActionTransfer, entities.ActionBoard, entities.ActionArrive}
	for i, step := range steps {
		if step.Action != want[i] {
			t.Errorf("Step %d: action %s, want %s", i, step.Action, want[i])
		}
	}
	if steps[0].Station != "B03" || steps[3].Station != "C07" {
		t.Errorf("Unexpected endpoints %s and %s", steps[0].Station, steps[3].Station)
	}
}

func TestCommonRouteReversed(t *testing.T) {
	d := Default()

	steps, ok := d.BuildRoute("C07", "B03")
	if !ok || len(steps) != 4 {
		t.Fatalf("Expected reversed 4-step route, got %v (ok=%v)", steps, ok)
	}
	if steps[0].Station != "C07" || steps[0].Action != entities.ActionStart || steps[0].Line != "BL" {
		t.Errorf("Unexpected first step %+v", steps[0])
	}
	if steps[3].Station != "B03" || steps[3].Action != entities.ActionArrive || steps[3].Line != "RD" {
		t.Errorf("Unexpected last step %+v", steps[3])
	}
	if steps[1].Action != entities.ActionBoard || steps[2].Action != entities.ActionTransfer {
		t.Errorf("Expected board then transfer in the middle, got %s, %s", steps[1].Action, steps[2].Action)
	}

	// The table itself must not be touched by reversal
	forward, _ := d.CommonRoute("B03", "C07")
	if forward[0].Action != entities.ActionStart || forward[3].Action != entities.ActionArrive {
		t.Errorf("Precomputed table was modified: %+v", forward)
	}
}

func TestFormatPrediction(t *testing.T) {
	tests := []struct {
		name string
		in   entities.Prediction
		want []string
	}{
		{"arriving", entities.Prediction{Line: "RD", DestinationName: "Glenmont", Min: "ARR", Car: "8"}, []string{"Red Line", "Glenmont", "Arriving now", "(8 cars)"}},
		{"boarding", entities.Prediction{Line: "BL", DestinationName: "Largo", Min: "BRD", Car: "6"}, []string{"Blue Line", "Boarding"}},
		{"minutes", entities.Prediction{Line: "SV", DestinationName: "Ashburn", Min: "7", Car: "8"}, []string{"Silver Line", "7 minutes"}},
		{"verbatim minutes", entities.Prediction{Line: "OR", DestinationName: "Vienna", Min: "---", Car: "-"}, []string{"--- minutes", "(- cars)"}},
		{"unknown line", entities.Prediction{Line: "XX", DestinationName: "No Passenger", Min: "3", Car: "8"}, []string{"Unknown to No Passenger"}},
		{"missing fields", entities.Prediction{}, []string{"Unknown to Unknown - Unknown minutes (Unknown cars)"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatPrediction(tt.in)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("FormatPrediction() = %q, expected it to contain %q", got, w)
				}
			}
		})
	}
}
