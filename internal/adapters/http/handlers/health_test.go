package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santiagoBatista94/MUSEO-SANTIBatista/internal/ports"
)

// stubChecker implements ports.HealthChecker.
type stubChecker struct {
	name string
	err  error
}

func (s *stubChecker) Name() string                  { return s.name }
func (s *stubChecker) Check(_ context.Context) error { return s.err }

func newHealthRouter(t *testing.T, checkers ...ports.HealthChecker) *gin.Engine {
	t.Helper()

	registry := ports.NewHealthRegistry()
	for _, checker := range checkers {
		require.NoError(t, registry.Register(checker))
	}

	engine := gin.New()
	handler := NewHealthHandler(registry, NewBuildInfo("1.2.3", "abc123", "2026-01-01T00:00:00Z"))
	handler.RegisterHealthRoutesOnEngine(engine)

	return engine
}

func TestLiveness(t *testing.T) {
	router := newHealthRouter(t)

	w := get(router, "/-/live")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestReadiness_AllHealthy(t *testing.T) {
	router := newHealthRouter(t,
		&stubChecker{name: "collection-api"},
		&stubChecker{name: "translation-service"},
	)

	w := get(router, "/-/ready")

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status string `json:"status"`
		Checks map[string]struct {
			Status string `json:"status"`
		} `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Len(t, resp.Checks, 2)
	assert.Equal(t, "healthy", resp.Checks["collection-api"].Status)
}

func TestReadiness_UnhealthyDependency(t *testing.T) {
	router := newHealthRouter(t,
		&stubChecker{name: "collection-api", err: errors.New("connection refused")},
	)

	w := get(router, "/-/ready")

	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "unhealthy", resp.Status)
}

func TestBuildInfoHandler(t *testing.T) {
	router := newHealthRouter(t)

	w := get(router, "/-/build")

	require.Equal(t, http.StatusOK, w.Code)

	var info BuildInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "abc123", info.Commit)
	assert.NotEmpty(t, info.GoVersion)
}

func TestMetricsEndpoint(t *testing.T) {
	router := newHealthRouter(t)

	w := get(router, "/-/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.String())
}
