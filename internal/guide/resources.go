// Package guide holds the static reference documents and prompt templates
// offered to the plugin host alongside the live tools.
package guide

// Resource is a static reference document
type Resource struct {
	Name        string `json:"name"`
	URI         string `json:"uri"`
	Description string `json:"description"`
	Text        string `json:"-"`
}

// Resources returns the reference documents in a fixed order
func Resources() []Resource {
	return []Resource{
		{
			Name:        "system-map",
			URI:         "wmata://system/map",
			Description: "Metro system map overview and line structure",
			Text:        systemMap,
		},
		{
			Name:        "fares",
			URI:         "wmata://fares/structure",
			Description: "Current Metro fare structure and payment options",
			Text:        fareStructure,
		},
	}
}

// FindResource looks a resource up by name or URI
func FindResource(key string) (Resource, bool) {
	for _, r := range Resources() {
		if r.Name == key || r.URI == key {
			return r, true
		}
	}
	return Resource{}, false
}

const systemMap = `
📍 Washington Metro System Map Overview

The Washington Metro consists of 6 colored lines serving 98 stations:

🔴 RED LINE (Glenmont ↔ Shady Grove)
- Serves: Downtown, Dupont Circle, Bethesda, Silver Spring
- Key stations: Union Station, Metro Center, Dupont Circle

🔵 BLUE LINE (Downtown Largo ↔ Franconia-Springfield)
- Serves: Downtown, Arlington, Alexandria
- Key stations: Pentagon, Smithsonian, Capitol South

🟡 YELLOW LINE (Huntington ↔ Fort Totten)
- Serves: Downtown, National Airport, Pentagon
- Key stations: Gallery Place, L'Enfant Plaza, Pentagon

🟠 ORANGE LINE (New Carrollton ↔ Vienna)
- Serves: Downtown, Arlington, Fairfax County
- Key stations: Federal Triangle, Rosslyn, Ballston

🟢 GREEN LINE (Branch Ave ↔ Greenbelt)
- Serves: Downtown, Anacostia, Prince George's County
- Key stations: Gallery Place, Navy Yard, Fort Totten

🩶 SILVER LINE (Downtown Largo ↔ Ashburn)
- Serves: Downtown, Tysons, Dulles Airport, Loudoun County
- Key stations: Metro Center, Rosslyn, Wiehle-Reston East

Major Transfer Stations:
• Metro Center (Red/Blue/Orange/Silver)
• Gallery Place-Chinatown (Red/Green/Yellow)
• L'Enfant Plaza (Blue/Orange/Silver/Green/Yellow)
• Fort Totten (Red/Green/Yellow)
• Rosslyn (Blue/Orange/Silver)

Operating Hours: 5:00 AM - 12:00 AM (Mon-Thu), 5:00 AM - 1:00 AM (Fri), 7:00 AM - 1:00 AM (Sat), 8:00 AM - 12:00 AM (Sun)
`

const fareStructure = `
💳 Metro Fare Information

BASE FARES (2024):
• Peak Hours: $2.45 - $6.75 (Mon-Fri 5:00-9:30 AM, 3:00-7:00 PM)
• Off-Peak: $2.25 - $6.00 (All other times)
• Weekend: $2.25 - $6.00

PAYMENT OPTIONS:
🎫 SmarTrip Card/App: Standard payment method
📱 Mobile Pay: Apple Pay, Google Pay, Samsung Pay
💳 Contactless: Tap credit/debit cards directly

PASSES & DISCOUNTS:
• 7-Day Fast Pass: $66 (unlimited rail travel)
• 1-Day Pass: $15 (unlimited rail travel)
• Reduced Fare: 50% off for seniors (65+), disabled, Medicare cardholders
• Kids Under 5: Free with paying customer

TIPS:
• Fares calculated by distance traveled
• Same-day transfers between rail/bus: $0.50 discount
• Add value online, at stations, or participating retailers
• $2 fee for new SmarTrip cards at stations (free online)
• Mobile apps offer trip planning and real-time info
`
