package guide

import (
	"fmt"
	"strings"
)

// PromptArgument describes one template parameter
type PromptArgument struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
	Default  string `json:"default,omitempty"`
}

// Prompt is a named guidance template
type Prompt struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Arguments   []PromptArgument `json:"arguments"`
	render      func(args map[string]string) string
}

// Render fills the template, applying defaults and rejecting missing required arguments
func (p Prompt) Render(args map[string]string) (string, error) {
	values := make(map[string]string, len(p.Arguments))
	for _, a := range p.Arguments {
		v := strings.TrimSpace(args[a.Name])
		if v == "" {
			v = a.Default
		}
		if v == "" && a.Required {
			return "", fmt.Errorf("missing required argument %q", a.Name)
		}
		values[a.Name] = v
	}
	return p.render(values), nil
}

// Prompts returns the prompt templates in a fixed order
func Prompts() []Prompt {
	return []Prompt{
		{
			Name:        "plan_trip",
			Description: "Plan a complete Metro trip with step-by-step directions",
			Arguments: []PromptArgument{
				{Name: "origin", Required: true},
				{Name: "destination", Required: true},
				{Name: "departure_time", Default: "now"},
			},
			render: func(a map[string]string) string {
				return PlanTrip(a["origin"], a["destination"], a["departure_time"])
			},
		},
		{
			Name:        "check_accessibility",
			Description: "Check accessibility status and features for a Metro station",
			Arguments:   []PromptArgument{{Name: "station", Required: true}},
			render: func(a map[string]string) string {
				return CheckAccessibility(a["station"])
			},
		},
		{
			Name:        "tourist_guide",
			Description: "Tourist-friendly Metro guidance to popular DC destinations",
			Arguments:   []PromptArgument{{Name: "destination", Required: true}},
			render: func(a map[string]string) string {
				return TouristGuide(a["destination"])
			},
		},
		{
			Name:        "service_disruption_help",
			Description: "Help during Metro service disruptions and alternatives",
			render: func(map[string]string) string {
				return ServiceDisruptionHelp()
			},
		},
		{
			Name:        "rush_hour_strategy",
			Description: "Optimal travel strategy for rush hour Metro travel",
			Arguments: []PromptArgument{
				{Name: "origin", Required: true},
				{Name: "destination", Required: true},
				{Name: "time_of_day", Required: true},
			},
			render: func(a map[string]string) string {
				return RushHourStrategy(a["origin"], a["destination"], a["time_of_day"])
			},
		},
	}
}

// FindPrompt looks a prompt up by name
func FindPrompt(name string) (Prompt, bool) {
	for _, p := range Prompts() {
		if p.Name == name {
			return p, true
		}
	}
	return Prompt{}, false
}

// PlanTrip asks for a full itinerary
func PlanTrip(origin, destination, departureTime string) string {
	if departureTime == "" {
		departureTime = "now"
	}
	return fmt.Sprintf(`I need to plan a Metro trip from %s to %s, departing %s.

Please help me by:
1. Finding the best route between these stations
2. Checking current service alerts that might affect my trip
3. Getting live train predictions for my starting station
4. Providing any accessibility information if needed
5. Suggesting the best exit/entrance to use at my destination

Also let me know about:
- Estimated travel time
- Any transfers required
- Current system status
- Tips for a smooth journey`, origin, destination, departureTime)
}

// CheckAccessibility asks for elevator and entrance information at a station
func CheckAccessibility(station string) string {
	return fmt.Sprintf(`I need accessibility information for %s station. Please provide:

1. Current elevator and escalator status
2. Accessible entrance locations
3. Platform accessibility features
4. Any current outages affecting accessibility
5. Alternative accessible routes if there are outages

This information is important for planning accessible Metro travel.`, station)
}

// TouristGuide asks for beginner-friendly directions to an attraction
func TouristGuide(destination string) string {
	return fmt.Sprintf(`I'm visiting Washington DC and want to get to %[1]s using Metro. As a tourist, I need:

1. Which Metro station is closest to %[1]s
2. How to get there from a central location (like Union Station or Metro Center)
3. What exit to use at the destination station
4. Approximate walking time from the station
5. Any tourist tips for using Metro
6. Information about SmarTrip cards and payment options
7. Current service status and any alerts

Please provide beginner-friendly directions and Metro etiquette tips.`, destination)
}

// ServiceDisruptionHelp asks for alternatives during a disruption
func ServiceDisruptionHelp() string {
	return `There seems to be a service disruption affecting my Metro travel. Please help by:

1. Checking all current service alerts and incidents
2. Identifying which lines and stations are affected
3. Suggesting alternative routes if possible
4. Providing information about shuttle bus services
5. Giving realistic time estimates for delays
6. Checking elevator/escalator status for accessibility needs

I need to understand my options and plan accordingly for the disruption.`
}

// RushHourStrategy asks for a crowd-aware plan
func RushHourStrategy(origin, destination, timeOfDay string) string {
	return fmt.Sprintf(`I need to travel from %s to %s during %s. Please help optimize my trip by:

1. Finding the best route with minimal transfers
2. Checking current train predictions and frequencies
3. Identifying less crowded cars or boarding spots
4. Suggesting optimal departure time to avoid peak crowding
5. Providing backup routes in case of delays
6. Checking for any planned service work affecting my route

I want to minimize travel time and avoid the worst crowds during rush hour.`, origin, destination, timeOfDay)
}
