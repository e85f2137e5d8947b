package metro

import "github.com/abelzeko/metro-bot/internal/entities"

// BuildRoute constructs an itinerary between two distinct stations.
//
// Precomputed routes are used first, verbatim or reversed. Otherwise a shared
// line gives a two-step ride, and disjoint line-sets get a single transfer at
// the first non-hub station (directory order) touching both, falling back to
// the first hub. At most one transfer is ever produced. The second result is
// false when no single-transfer route exists.
func (d *Directory) BuildRoute(from, to string) ([]entities.RouteStep, bool) {
	if steps, ok := d.CommonRoute(from, to); ok {
		return steps, true
	}

	fromLines := d.LinesOf(from)
	toLines := d.LinesOf(to)

	if line, ok := commonLine(fromLines, toLines); ok {
		return []entities.RouteStep{
			{Station: from, Name: d.Name(from), Line: line, Action: entities.ActionStart},
			{Station: to, Name: d.Name(to), Line: line, Action: entities.ActionArrive},
		}, true
	}

	transfer, ok := d.transferPoint(fromLines, toLines)
	if !ok {
		return nil, false
	}

	first, _ := commonLine(fromLines, transfer.Lines)
	second, _ := commonLine(transfer.Lines, toLines)

	return []entities.RouteStep{
		{Station: from, Name: d.Name(from), Line: first, Action: entities.ActionStart},
		{Station: transfer.ID, Name: transfer.Name, Line: first, Action: entities.ActionTransferTo, NextLine: second},
		{Station: to, Name: d.Name(to), Line: second, Action: entities.ActionArrive},
	}, true
}

// CommonRoute looks up a precomputed route. A match in the reverse direction
// is returned reversed with its start and arrive tags swapped.
func (d *Directory) CommonRoute(from, to string) ([]entities.RouteStep, bool) {
	for _, r := range d.routes {
		if r.From == from && r.To == to {
			steps := make([]entities.RouteStep, len(r.Steps))
			copy(steps, r.Steps)
			return steps, true
		}
	}

	for _, r := range d.routes {
		if r.From == to && r.To == from {
			n := len(r.Steps)
			steps := make([]entities.RouteStep, n)
			for i, step := range r.Steps {
				switch step.Action {
				case entities.ActionStart:
					step.Action = entities.ActionArrive
				case entities.ActionArrive:
					step.Action = entities.ActionStart
				}
				steps[n-1-i] = step
			}
			return steps, true
		}
	}

	return nil, false
}

func (d *Directory) transferPoint(fromLines, toLines []string) (entities.Station, bool) {
	var hub *entities.Station
	for i := range d.stations {
		s := &d.stations[i]
		if !intersects(s.Lines, fromLines) || !intersects(s.Lines, toLines) {
			continue
		}
		if !d.hubs[s.ID] {
			return *s, true
		}
		if hub == nil {
			hub = s
		}
	}
	if hub == nil {
		return entities.Station{}, false
	}
	return *hub, true
}

// commonLine returns the lexicographically smallest line code present in both sets
func commonLine(a, b []string) (string, bool) {
	best := ""
	for _, l := range a {
		if contains(b, l) && (best == "" || l < best) {
			best = l
		}
	}
	return best, best != ""
}

func intersects(a, b []string) bool {
	_, ok := commonLine(a, b)
	return ok
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
