package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineMetrics_Record(t *testing.T) {
	registry := prometheus.NewRegistry()
	m, err := NewPipelineMetrics(registry)
	require.NoError(t, err)

	m.RecordRecompute("live", true)
	m.RecordRecompute("live", true)
	m.RecordRecompute("live", false)
	m.RecordRecompute("cache", true)
	m.RecordFetchError("quotes")
	m.RecordViewCache(true)
	m.RecordViewCache(false)
	m.RecordViewCache(true)
	m.AddHeldItems(7)
	m.AddHeldItems(5)
	m.AddHeldItems(-4)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.recomputationsTotal.WithLabelValues("live", "true")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.recomputationsTotal.WithLabelValues("live", "false")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.recomputationsTotal.WithLabelValues("cache", "true")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.fetchErrorsTotal.WithLabelValues("quotes")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.viewCacheTotal.WithLabelValues("hit")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.viewCacheTotal.WithLabelValues("miss")))
	assert.Equal(t, float64(8), testutil.ToFloat64(m.heldItems))
}

func TestPipelineMetrics_DuplicateRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()
	_, err := NewPipelineMetrics(registry)
	require.NoError(t, err)

	_, err = NewPipelineMetrics(registry)
	assert.Error(t, err)
}

func TestHandler(t *testing.T) {
	registry := NewRegistry()
	m, err := NewPipelineMetrics(registry)
	require.NoError(t, err)
	m.RecordFetchError("invoices")

	srv := httptest.NewServer(Handler(registry))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), `pipeline_source_fetch_errors_total{source="invoices"} 1`))
	assert.True(t, strings.Contains(string(body), "go_goroutines"))
	assert.False(t, strings.Contains(string(body), "organization_id"))
}
