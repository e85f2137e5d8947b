// Package metro holds the station directory and the offline lookups built on
// top of it: name resolution, route construction and prediction formatting.
package metro

import (
	"fmt"

	"github.com/abelzeko/metro-bot/internal/entities"
)

// CommonRoute is a precomputed itinerary between two stations
type CommonRoute struct {
	From  string
	To    string
	Steps []entities.RouteStep
}

// Directory is a read-only view over a station table. Every lookup that has to
// pick between several matches walks the stations in table order.
type Directory struct {
	stations []entities.Station
	byID     map[string]int
	byName   map[string]string
	hubs     map[string]bool
	routes   []CommonRoute
}

// NewDirectory indexes the given tables. The slices are not copied and must
// not be modified afterwards.
func NewDirectory(stations []entities.Station, hubs []string, routes []CommonRoute) *Directory {
	d := &Directory{
		stations: stations,
		byID:     make(map[string]int, len(stations)),
		byName:   make(map[string]string, len(stations)),
		hubs:     make(map[string]bool, len(hubs)),
		routes:   routes,
	}
	for i, s := range stations {
		d.byID[s.ID] = i
		d.byName[s.Name] = s.ID
	}
	for _, h := range hubs {
		d.hubs[h] = true
	}
	return d
}

// Stations returns a copy of the station table in directory order
func (d *Directory) Stations() []entities.Station {
	out := make([]entities.Station, len(d.stations))
	copy(out, d.stations)
	return out
}

// Station looks up a station by code
func (d *Directory) Station(code string) (entities.Station, bool) {
	i, ok := d.byID[code]
	if !ok {
		return entities.Station{}, false
	}
	return d.stations[i], true
}

// Name returns the display name of a station, or the code itself when unknown
func (d *Directory) Name(code string) string {
	if s, ok := d.Station(code); ok {
		return s.Name
	}
	return code
}

// LinesOf returns the line codes serving a station
func (d *Directory) LinesOf(code string) []string {
	s, ok := d.Station(code)
	if !ok {
		return nil
	}
	return s.Lines
}

// IsHub reports whether the station is one of the major hubs
func (d *Directory) IsHub(code string) bool {
	return d.hubs[code]
}

// Validate checks that the tables are consistent: unique codes and names,
// every station served by at least one known line, and precomputed routes
// that start and end at their endpoints.
func (d *Directory) Validate() error {
	if len(d.byID) != len(d.stations) {
		return fmt.Errorf("duplicate station codes in directory")
	}
	if len(d.byName) != len(d.stations) {
		return fmt.Errorf("duplicate station names in directory")
	}
	for _, s := range d.stations {
		if len(s.Lines) == 0 {
			return fmt.Errorf("station %s has no lines", s.ID)
		}
		for _, l := range s.Lines {
			if _, ok := LineName(l); !ok {
				return fmt.Errorf("station %s references unknown line %q", s.ID, l)
			}
		}
	}
	for _, r := range d.routes {
		n := len(r.Steps)
		if n < 2 {
			return fmt.Errorf("route %s-%s has %d steps", r.From, r.To, n)
		}
		if r.Steps[0].Station != r.From || r.Steps[0].Action != entities.ActionStart {
			return fmt.Errorf("route %s-%s does not start at %s", r.From, r.To, r.From)
		}
		if r.Steps[n-1].Station != r.To || r.Steps[n-1].Action != entities.ActionArrive {
			return fmt.Errorf("route %s-%s does not arrive at %s", r.From, r.To, r.To)
		}
	}
	return nil
}

// LineName returns the display name of a line code
func LineName(code string) (string, bool) {
	for _, l := range Lines {
		if l.Code == code {
			return l.Name, true
		}
	}
	return "", false
}

// LineLabel is LineName that falls back to the raw code
func LineLabel(code string) string {
	if name, ok := LineName(code); ok {
		return name
	}
	return code
}
