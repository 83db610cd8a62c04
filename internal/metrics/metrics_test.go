package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewRegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ListsGenerated.Inc()
	m.PriceFallbacks.WithLabelValues("kroger", "error").Add(2)

	if got := testutil.ToFloat64(m.ListsGenerated); got != 1 {
		t.Errorf("lists generated = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.PriceFallbacks.WithLabelValues("kroger", "error")); got != 2 {
		t.Errorf("fallbacks = %v, want 2", got)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.ListsGenerated.Inc()

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "mealcart_shopping_lists_generated_total 1") {
		t.Errorf("body missing counter:\n%s", rec.Body.String())
	}
}
