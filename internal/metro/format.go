package metro

import (
	"fmt"

	"github.com/abelzeko/metro-bot/internal/entities"
)

const unknown = "Unknown"

// FormatPrediction renders a live arrival as a single display line.
// Unknown line codes and missing fields are shown as "Unknown".
func FormatPrediction(p entities.Prediction) string {
	line, ok := LineName(p.Line)
	if !ok {
		line = unknown
	}

	var timeInfo string
	switch p.Min {
	case "ARR":
		timeInfo = "Arriving now"
	case "BRD":
		timeInfo = "Boarding"
	default:
		timeInfo = fmt.Sprintf("%s minutes", orUnknown(p.Min))
	}

	return fmt.Sprintf("🚇 %s to %s - %s (%s cars)", line, orUnknown(p.DestinationName), timeInfo, orUnknown(p.Car))
}

func orUnknown(s string) string {
	if s == "" {
		return unknown
	}
	return s
}
