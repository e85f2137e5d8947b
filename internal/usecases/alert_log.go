package usecases

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/abelzeko/metro-bot/internal/entities"
	"github.com/abelzeko/metro-bot/internal/metrics"
)

// ErrNoAlertLog is returned by RefreshAlertLog when no repository is configured
var ErrNoAlertLog = errors.New("alert log is not configured")

// RefreshAlertLog fetches current incidents and elevator outages and records
// them in the alert log. It returns the number of records written.
func (uc *MetroUseCase) RefreshAlertLog(ctx context.Context) (int, error) {
	if uc.repo == nil {
		return 0, ErrNoAlertLog
	}

	var (
		incidents *entities.IncidentResponse
		elevators *entities.ElevatorIncidentResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resp, err := uc.api.Incidents(gctx)
		if err != nil {
			return fmt.Errorf("failed to fetch incidents: %w", err)
		}
		incidents = resp
		return nil
	})
	g.Go(func() error {
		resp, err := uc.api.ElevatorIncidents(gctx)
		if err != nil {
			return fmt.Errorf("failed to fetch elevator incidents: %w", err)
		}
		elevators = resp
		return nil
	})
	if err := g.Wait(); err != nil {
		return 0, err
	}

	records := make([]entities.AlertRecord, 0, len(incidents.Incidents)+len(elevators.ElevatorIncidents))
	for _, incident := range incidents.Incidents {
		records = append(records, incidentRecord(incident))
	}
	for _, outage := range elevators.ElevatorIncidents {
		records = append(records, uc.outageRecord(outage))
	}

	if len(records) == 0 {
		log.Println("No active alerts to record")
		return 0, nil
	}

	if err := uc.repo.SaveAlerts(records, uc.now()); err != nil {
		return 0, fmt.Errorf("failed to save alerts: %w", err)
	}

	metrics.ObserveAlerts(entities.AlertKindIncident, len(incidents.Incidents))
	metrics.ObserveAlerts(entities.AlertKindElevator, len(elevators.ElevatorIncidents))

	log.Printf("Recorded %d incidents and %d elevator outages", len(incidents.Incidents), len(elevators.ElevatorIncidents))
	return len(records), nil
}

func incidentRecord(incident entities.Incident) entities.AlertRecord {
	id := incident.IncidentID
	if id == "" {
		id = incident.IncidentType + ":" + incident.Description
	}
	return entities.AlertRecord{
		Kind:        entities.AlertKindIncident,
		ExternalID:  id,
		Title:       valueOr(incident.IncidentType, "Unknown"),
		Description: incident.Description,
		Lines:       strings.Trim(incident.LinesAffected, "; "),
	}
}

func (uc *MetroUseCase) outageRecord(outage entities.ElevatorIncident) entities.AlertRecord {
	id := outage.UnitName
	if id == "" {
		id = outage.StationCode + ":" + outage.UnitType + ":" + outage.LocationDescription
	}
	return entities.AlertRecord{
		Kind:        entities.AlertKindElevator,
		ExternalID:  id,
		StationCode: outage.StationCode,
		Title:       fmt.Sprintf("%s - %s Issue", uc.outageStationName(outage), valueOr(outage.UnitType, "Equipment")),
		Description: outage.SymptomDescription,
		Lines:       strings.Join(uc.directory.LinesOf(outage.StationCode), ";"),
	}
}
