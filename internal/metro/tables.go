package metro

import "github.com/abelzeko/metro-bot/internal/entities"

// Lines is the fixed set of Metro lines
var Lines = []entities.Line{
	{Code: "RD", Name: "Red Line"},
	{Code: "BL", Name: "Blue Line"},
	{Code: "YL", Name: "Yellow Line"},
	{Code: "OR", Name: "Orange Line"},
	{Code: "GR", Name: "Green Line"},
	{Code: "SV", Name: "Silver Line"},
}

// ListingOrder is the order lines are printed in the station directory
var ListingOrder = []string{"RD", "OR", "SV", "BL", "YL", "GR"}

// MajorHubs are given the lowest priority when picking a transfer station
var MajorHubs = []string{"C01", "F01", "F03"}

// Stations is the WMATA station table. Its order is the canonical enumeration
// order used by fuzzy name resolution and transfer selection.
var Stations = []entities.Station{
	{ID: "C01", Name: "Metro Center", Lines: []string{"RD", "BL", "OR", "SV"}},
	{ID: "A02", Name: "Farragut North", Lines: []string{"RD"}},
	{ID: "A03", Name: "Dupont Circle", Lines: []string{"RD"}},
	{ID: "A04", Name: "Woodley Park-Zoo/Adams Morgan", Lines: []string{"RD"}},
	{ID: "A05", Name: "Cleveland Park", Lines: []string{"RD"}},
	{ID: "A06", Name: "Van Ness-UDC", Lines: []string{"RD"}},
	{ID: "A07", Name: "Tenleytown-AU", Lines: []string{"RD"}},
	{ID: "A08", Name: "Friendship Heights", Lines: []string{"RD"}},
	{ID: "A09", Name: "Bethesda", Lines: []string{"RD"}},
	{ID: "A10", Name: "Medical Center", Lines: []string{"RD"}},
	{ID: "A11", Name: "Grosvenor-Strathmore", Lines: []string{"RD"}},
	{ID: "A12", Name: "North Bethesda", Lines: []string{"RD"}},
	{ID: "A13", Name: "Twinbrook", Lines: []string{"RD"}},
	{ID: "A14", Name: "Rockville", Lines: []string{"RD"}},
	{ID: "A15", Name: "Shady Grove", Lines: []string{"RD"}},
	{ID: "F01", Name: "Gallery Pl-Chinatown", Lines: []string{"RD", "GR", "YL"}},
	{ID: "B02", Name: "Judiciary Square", Lines: []string{"RD"}},
	{ID: "B03", Name: "Union Station", Lines: []string{"RD"}},
	{ID: "B04", Name: "Rhode Island Ave-Brentwood", Lines: []string{"RD"}},
	{ID: "B05", Name: "Brookland-CUA", Lines: []string{"RD"}},
	{ID: "E06", Name: "Fort Totten", Lines: []string{"RD", "GR"}},
	{ID: "B07", Name: "Takoma", Lines: []string{"RD"}},
	{ID: "B08", Name: "Silver Spring", Lines: []string{"RD"}},
	{ID: "B09", Name: "Forest Glen", Lines: []string{"RD"}},
	{ID: "B10", Name: "Wheaton", Lines: []string{"RD"}},
	{ID: "B11", Name: "Glenmont", Lines: []string{"RD"}},
	{ID: "B35", Name: "NoMa-Gallaudet U", Lines: []string{"RD"}},
	{ID: "C02", Name: "McPherson Square", Lines: []string{"BL", "OR", "SV"}},
	{ID: "C03", Name: "Farragut West", Lines: []string{"BL", "OR", "SV"}},
	{ID: "C04", Name: "Foggy Bottom-GWU", Lines: []string{"BL", "OR", "SV"}},
	{ID: "C05", Name: "Rosslyn", Lines: []string{"BL", "OR", "SV"}},
	{ID: "C06", Name: "Arlington Cemetery", Lines: []string{"BL"}},
	{ID: "C07", Name: "Pentagon", Lines: []string{"BL", "YL"}},
	{ID: "C08", Name: "Pentagon City", Lines: []string{"BL", "YL"}},
	{ID: "C09", Name: "Crystal City", Lines: []string{"BL", "YL"}},
	{ID: "C10", Name: "Ronald Reagan Washington National Airport", Lines: []string{"BL", "YL"}},
	{ID: "C11", Name: "Potomac Yard", Lines: []string{"BL", "YL"}},
	{ID: "C12", Name: "Braddock Road", Lines: []string{"BL", "YL"}},
	{ID: "C13", Name: "King St-Old Town", Lines: []string{"BL", "YL"}},
	{ID: "C14", Name: "Eisenhower Avenue", Lines: []string{"BL"}},
	{ID: "C15", Name: "Huntington", Lines: []string{"BL"}},
	{ID: "D01", Name: "Federal Triangle", Lines: []string{"OR", "SV"}},
	{ID: "D02", Name: "Smithsonian", Lines: []string{"OR", "SV"}},
	{ID: "F03", Name: "L'Enfant Plaza", Lines: []string{"BL", "OR", "SV", "GR", "YL"}},
	{ID: "D04", Name: "Federal Center SW", Lines: []string{"OR", "SV"}},
	{ID: "D05", Name: "Capitol South", Lines: []string{"OR", "SV"}},
	{ID: "D06", Name: "Eastern Market", Lines: []string{"OR", "SV"}},
	{ID: "D07", Name: "Potomac Ave", Lines: []string{"OR", "SV"}},
	{ID: "D08", Name: "Stadium-Armory", Lines: []string{"OR", "SV"}},
	{ID: "D09", Name: "Minnesota Ave", Lines: []string{"OR"}},
	{ID: "D10", Name: "Deanwood", Lines: []string{"OR"}},
	{ID: "D11", Name: "Cheverly", Lines: []string{"OR"}},
	{ID: "D12", Name: "Landover", Lines: []string{"OR"}},
	{ID: "D13", Name: "New Carrollton", Lines: []string{"OR", "SV"}},
	{ID: "E01", Name: "Mt Vernon Sq 7th St-Convention Center", Lines: []string{"GR", "YL"}},
	{ID: "E02", Name: "Shaw-Howard U", Lines: []string{"GR"}},
	{ID: "E03", Name: "U Street/African-Amer Civil War Memorial/Cardozo", Lines: []string{"GR"}},
	{ID: "E04", Name: "Columbia Heights", Lines: []string{"GR"}},
	{ID: "E05", Name: "Georgia Ave-Petworth", Lines: []string{"GR"}},
	{ID: "E07", Name: "West Hyattsville", Lines: []string{"GR"}},
	{ID: "E08", Name: "Hyattsville Crossing", Lines: []string{"GR"}},
	{ID: "E09", Name: "College Park-U of Md", Lines: []string{"GR"}},
	{ID: "E10", Name: "Greenbelt", Lines: []string{"GR"}},
	{ID: "F02", Name: "Archives-Navy Memorial-Penn Quarter", Lines: []string{"GR", "YL"}},
	{ID: "F04", Name: "Waterfront", Lines: []string{"GR"}},
	{ID: "F05", Name: "Navy Yard-Ballpark", Lines: []string{"GR"}},
	{ID: "F06", Name: "Anacostia", Lines: []string{"GR"}},
	{ID: "F07", Name: "Congress Heights", Lines: []string{"GR"}},
	{ID: "F08", Name: "Southern Avenue", Lines: []string{"GR"}},
	{ID: "F09", Name: "Naylor Road", Lines: []string{"GR"}},
	{ID: "F10", Name: "Suitland", Lines: []string{"GR"}},
	{ID: "F11", Name: "Branch Ave", Lines: []string{"GR"}},
	{ID: "G01", Name: "Benning Road", Lines: []string{"BL"}},
	{ID: "G02", Name: "Capitol Heights", Lines: []string{"BL"}},
	{ID: "G03", Name: "Addison Road-Seat Pleasant", Lines: []string{"BL"}},
	{ID: "G04", Name: "Morgan Boulevard", Lines: []string{"BL"}},
	{ID: "G05", Name: "Downtown Largo", Lines: []string{"BL", "SV"}},
	{ID: "J02", Name: "Van Dorn Street", Lines: []string{"BL"}},
	{ID: "J03", Name: "Franconia-Springfield", Lines: []string{"BL"}},
	{ID: "K01", Name: "Court House", Lines: []string{"OR", "SV"}},
	{ID: "K02", Name: "Clarendon", Lines: []string{"OR", "SV"}},
	{ID: "K03", Name: "Virginia Square-GMU", Lines: []string{"OR", "SV"}},
	{ID: "K04", Name: "Ballston-MU", Lines: []string{"OR", "SV"}},
	{ID: "K05", Name: "East Falls Church", Lines: []string{"OR", "SV"}},
	{ID: "K06", Name: "West Falls Church", Lines: []string{"OR", "SV"}},
	{ID: "K07", Name: "Dunn Loring-Merrifield", Lines: []string{"OR", "SV"}},
	{ID: "K08", Name: "Vienna/Fairfax-GMU", Lines: []string{"OR", "SV"}},
	{ID: "N01", Name: "McLean", Lines: []string{"SV"}},
	{ID: "N02", Name: "Tysons", Lines: []string{"SV"}},
	{ID: "N03", Name: "Greensboro", Lines: []string{"SV"}},
	{ID: "N04", Name: "Spring Hill", Lines: []string{"SV"}},
	{ID: "N06", Name: "Wiehle-Reston East", Lines: []string{"SV"}},
	{ID: "N07", Name: "Reston Town Center", Lines: []string{"SV"}},
	{ID: "N08", Name: "Herndon", Lines: []string{"SV"}},
	{ID: "N09", Name: "Innovation Center", Lines: []string{"SV"}},
	{ID: "N10", Name: "Washington Dulles International Airport", Lines: []string{"SV"}},
	{ID: "N11", Name: "Loudoun Gateway", Lines: []string{"SV"}},
	{ID: "N12", Name: "Ashburn", Lines: []string{"SV"}},
}

// CommonRoutes are precomputed itineraries for frequently requested trips.
// They win over the transfer heuristic in both directions.
var CommonRoutes = []CommonRoute{
	{
		// Union Station to Pentagon
		From: "B03",
		To:   "C07",
		Steps: []entities.RouteStep{
			{Station: "B03", Name: "Union Station", Line: "RD", Action: entities.ActionStart},
			{Station: "C01", Name: "Metro Center", Line: "RD", Action: entities.ActionTransfer},
			{Station: "C01", Name: "Metro Center", Line: "BL", Action: entities.ActionBoard},
			{Station: "C07", Name: "Pentagon", Line: "BL", Action: entities.ActionArrive},
		},
	},
	{
		// Dupont Circle to National Airport
		From: "A03",
		To:   "C10",
		Steps: []entities.RouteStep{
			{Station: "A03", Name: "Dupont Circle", Line: "RD", Action: entities.ActionStart},
			{Station: "C01", Name: "Metro Center", Line: "RD", Action: entities.ActionTransfer},
			{Station: "C01", Name: "Metro Center", Line: "BL", Action: entities.ActionBoard},
			{Station: "C10", Name: "Ronald Reagan Washington National Airport", Line: "BL", Action: entities.ActionArrive},
		},
	},
	{
		// Gallery Place to Rosslyn
		From: "F01",
		To:   "C05",
		Steps: []entities.RouteStep{
			{Station: "F01", Name: "Gallery Pl-Chinatown", Line: "RD", Action: entities.ActionStart},
			{Station: "C01", Name: "Metro Center", Line: "RD", Action: entities.ActionTransfer},
			{Station: "C01", Name: "Metro Center", Line: "OR", Action: entities.ActionBoard},
			{Station: "C05", Name: "Rosslyn", Line: "OR", Action: entities.ActionArrive},
		},
	},
}

var defaultDirectory = NewDirectory(Stations, MajorHubs, CommonRoutes)

// Default returns the directory built from the WMATA tables
func Default() *Directory {
	return defaultDirectory
}
