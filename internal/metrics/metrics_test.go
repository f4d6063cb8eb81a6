package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestResolverErrorCounter(t *testing.T) {
	m := New()
	m.ResolverError("accounts")
	m.ResolverError("accounts")
	if got := testutil.ToFloat64(m.ResolverErrors.WithLabelValues("accounts")); got != 2 {
		t.Fatalf("accounts errors = %v, want 2", got)
	}

	var nilMetrics *Metrics
	nilMetrics.ResolverError("accounts") // must not panic
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.Requests.WithLabelValues("/graphql", "POST", "200").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body := rec.Body.String()
	if !strings.Contains(body, `http_requests_total{code="200",method="POST",path="/graphql"} 1`) {
		t.Fatalf("request counter missing from exposition:\n%s", body)
	}
	if !strings.Contains(body, "go_goroutines") {
		t.Fatalf("go collector missing from exposition")
	}
}
