package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveTool(t *testing.T) {
	before := testutil.ToFloat64(toolInvocations.WithLabelValues("get_service_alerts", "empty"))
	ObserveTool("get_service_alerts", "empty")
	ObserveTool("get_service_alerts", "empty")

	if got := testutil.ToFloat64(toolInvocations.WithLabelValues("get_service_alerts", "empty")); got != before+2 {
		t.Errorf("Expected %v invocations, got %v", before+2, got)
	}
}

func TestObserveUpstreamAndAlerts(t *testing.T) {
	ObserveUpstream("/Incidents.svc/json/Incidents", "200", 120*time.Millisecond)
	if got := testutil.ToFloat64(upstreamRequests.WithLabelValues("/Incidents.svc/json/Incidents", "200")); got < 1 {
		t.Errorf("Expected upstream request to be counted, got %v", got)
	}
	if n := testutil.CollectAndCount(upstreamLatency); n < 1 {
		t.Errorf("Expected latency series, got %d", n)
	}

	before := testutil.ToFloat64(alertsRecorded.WithLabelValues("elevator"))
	ObserveAlerts("elevator", 3)
	if got := testutil.ToFloat64(alertsRecorded.WithLabelValues("elevator")); got != before+3 {
		t.Errorf("Expected %v alerts, got %v", before+3, got)
	}
}
