// Package entities contains the core domain objects for the metro-bot application
package entities

// Station is a physical Metro stop
type Station struct {
	ID    string   // Station code, e.g. "C01"
	Name  string   // Canonical display name
	Lines []string // Line codes serving the station
}

// HasLine reports whether the station is served by the given line
func (s Station) HasLine(line string) bool {
	for _, l := range s.Lines {
		if l == line {
			return true
		}
	}
	return false
}

// Line is a named Metro service route
type Line struct {
	Code string // Short code, e.g. "RD"
	Name string // Display name, e.g. "Red Line"
}

// Action tags a single step of an itinerary
type Action string

const (
	ActionStart      Action = "start"
	ActionBoard      Action = "board"
	ActionTransfer   Action = "transfer"
	ActionTransferTo Action = "transfer_to"
	ActionArrive     Action = "arrive"
)

// RouteStep is one hop in a constructed itinerary
type RouteStep struct {
	Station  string
	Name     string
	Line     string
	Action   Action
	NextLine string // Only set for ActionTransferTo
}
