package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)

	s.IncUploadsProcessed()
	s.IncUploadsProcessed()
	s.IncUploadsFailed()
	s.AddResultsProduced(24)
	s.AddScoringFallbacks(2)
	s.ObserveParseDuration(0.3)
	s.SetStartupTime(1.5)

	rec := httptest.NewRecorder()
	NewMetricsHandler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "petanque_uploads_processed_total 2")
	assert.Contains(t, body, "petanque_uploads_failed_total 1")
	assert.Contains(t, body, "petanque_team_results_total 24")
	assert.Contains(t, body, "petanque_scoring_fallbacks_total 2")
	assert.Contains(t, body, "petanque_workbook_parse_duration_seconds_count 1")
	assert.Contains(t, body, "petanque_startup_time_seconds 1.5")
}

func TestNewService_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewService(reg)
	assert.Panics(t, func() { NewService(reg) })
}
