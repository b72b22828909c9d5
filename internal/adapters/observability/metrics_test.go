package observability

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRegistryServesCounters(t *testing.T) {
	reg := InitRegistry()

	ObserveHTTP("/v1/{locale}/beers", "GET", 200, 12e6)
	ObserveFallback("beers", "empty")
	ObserveAuth("denied")

	h := MetricsHandler(reg)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body := rec.Body.String()
	for _, want := range []string{
		"gallicus_http_requests_total",
		"gallicus_fallback_events_total",
		"gallicus_auth_events_total",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("metrics output missing %s", want)
		}
	}
}
