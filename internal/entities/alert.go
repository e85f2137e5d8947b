package entities

import "time"

// Alert kinds stored in the alert log
const (
	AlertKindIncident = "incident"
	AlertKindElevator = "elevator"
)

// AlertRecord is a single incident or outage observed by the watcher
type AlertRecord struct {
	ID          int64
	Kind        string // AlertKindIncident or AlertKindElevator
	ExternalID  string // Incident id or elevator unit name
	StationCode string // Empty for line incidents
	Title       string
	Description string
	Lines       string // Semicolon separated line codes, may be empty
	FirstSeen   time.Time
	LastSeen    time.Time
}
