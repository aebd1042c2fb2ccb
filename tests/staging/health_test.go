//go:build staging

package staging

import (
	"net/http"
	"strings"
	"testing"
)

func TestHealthCheck(t *testing.T) {
	resp, body := makeRequest(t, "/healthz")

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), `"ok"`) {
		t.Errorf("Expected ok status in body, got %s", body)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	resp, body := makeRequest(t, "/metrics")

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), "go_goroutines") {
		t.Errorf("Expected Prometheus metrics in body")
	}
}
