package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCheckHealthRollup(t *testing.T) {
	hc := NewHealthChecker("postwright", "test")
	hc.AddCheck("ok", func() CheckResult { return CheckResult{Status: StatusHealthy} })

	status := hc.CheckHealth()
	if status.Status != StatusHealthy {
		t.Fatalf("expected healthy, got %s", status.Status)
	}

	hc.AddCheck("warn", func() CheckResult { return CheckResult{Status: StatusDegraded} })
	if status := hc.CheckHealth(); status.Status != StatusDegraded {
		t.Fatalf("expected degraded, got %s", status.Status)
	}

	hc.AddCheck("down", func() CheckResult { return CheckResult{Status: StatusUnhealthy} })
	if status := hc.CheckHealth(); status.Status != StatusUnhealthy {
		t.Fatalf("expected unhealthy, got %s", status.Status)
	}
}

func TestHealthHandlerStatusCode(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hc := NewHealthChecker("postwright", "test")
	hc.AddCheck("down", func() CheckResult { return CheckResult{Status: StatusUnhealthy} })

	router := gin.New()
	router.GET("/health", hc.Handler())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}

func TestConfigurationHealthCheck(t *testing.T) {
	check := ConfigurationHealthCheck(map[string]string{"DATABASE_URL": ""})
	if result := check(); result.Status != StatusDegraded {
		t.Fatalf("expected degraded for missing config, got %s", result.Status)
	}

	check = ConfigurationHealthCheck(map[string]string{"DATABASE_URL": "postgres://x"})
	if result := check(); result.Status != StatusHealthy {
		t.Fatalf("expected healthy, got %s", result.Status)
	}
}
