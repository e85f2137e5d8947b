package entities

// Prediction is one live train arrival as reported by StationPrediction.svc.
// Min is either a number of minutes, "ARR" or "BRD".
type Prediction struct {
	Car             string `json:"Car"`
	Destination     string `json:"Destination"`
	DestinationCode string `json:"DestinationCode"`
	DestinationName string `json:"DestinationName"`
	Group           string `json:"Group"`
	Line            string `json:"Line"`
	LocationCode    string `json:"LocationCode"`
	LocationName    string `json:"LocationName"`
	Min             string `json:"Min"`
}

// PredictionResponse wraps GetPrediction results
type PredictionResponse struct {
	Trains []Prediction `json:"Trains"`
}

// RailFare holds fares for a single trip
type RailFare struct {
	OffPeakTime    float64 `json:"OffPeakTime"`
	PeakTime       float64 `json:"PeakTime"`
	SeniorDisabled float64 `json:"SeniorDisabled"`
}

// StationToStationInfo describes travel between two stations
type StationToStationInfo struct {
	CompositeMiles     float64  `json:"CompositeMiles"`
	DestinationStation string   `json:"DestinationStation"`
	RailFare           RailFare `json:"RailFare"`
	RailTime           int      `json:"RailTime"`
	SourceStation      string   `json:"SourceStation"`
}

// StationToStationResponse wraps jSrcStationToDstStationInfo results
type StationToStationResponse struct {
	StationToStationInfos []StationToStationInfo `json:"StationToStationInfos"`
}

// Incident is a rail service incident
type Incident struct {
	IncidentID    string `json:"IncidentID"`
	IncidentType  string `json:"IncidentType"`
	Description   string `json:"Description"`
	LinesAffected string `json:"LinesAffected"` // Semicolon separated, e.g. "RD;BL;"
	DateUpdated   string `json:"DateUpdated"`
}

// IncidentResponse wraps Incidents results
type IncidentResponse struct {
	Incidents []Incident `json:"Incidents"`
}

// ElevatorIncident is an elevator or escalator outage
type ElevatorIncident struct {
	UnitName                 string `json:"UnitName"`
	UnitType                 string `json:"UnitType"`
	StationCode              string `json:"StationCode"`
	StationName              string `json:"StationName"`
	LocationDescription      string `json:"LocationDescription"`
	SymptomDescription       string `json:"SymptomDescription"`
	DateOutOfServ            string `json:"DateOutOfServ"`
	EstimatedReturnToService string `json:"EstimatedReturnToService"`
}

// ElevatorIncidentResponse wraps ElevatorIncidents results
type ElevatorIncidentResponse struct {
	ElevatorIncidents []ElevatorIncident `json:"ElevatorIncidents"`
}

// Address is a station street address
type Address struct {
	City   string `json:"City"`
	State  string `json:"State"`
	Street string `json:"Street"`
	Zip    string `json:"Zip"`
}

// Parking summarises parking availability at a station
type Parking struct {
	TotalCount int `json:"TotalCount"`
}

// StationInfo is the jStationInfo payload
type StationInfo struct {
	Code      string   `json:"Code"`
	Name      string   `json:"Name"`
	Lat       float64  `json:"Lat"`
	Lon       float64  `json:"Lon"`
	LineCode1 string   `json:"LineCode1"`
	LineCode2 string   `json:"LineCode2"`
	LineCode3 string   `json:"LineCode3"`
	LineCode4 string   `json:"LineCode4"`
	Address   *Address `json:"Address"`
	Parking   *Parking `json:"Parking,omitempty"`
}

// LineCodes returns the non-empty line codes of the station
func (s StationInfo) LineCodes() []string {
	var codes []string
	for _, c := range []string{s.LineCode1, s.LineCode2, s.LineCode3, s.LineCode4} {
		if c != "" {
			codes = append(codes, c)
		}
	}
	return codes
}

// StationListResponse wraps jStations results
type StationListResponse struct {
	Stations []StationInfo `json:"Stations"`
}
