// Package metrics exposes the pipeline service instrumentation to Prometheus.
package metrics

import (
	"net/http"
	"strconv"

	"crm_pipeline/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PipelineMetrics contains Prometheus metrics for pipeline recomputation,
// source fetches and the view cache.
type PipelineMetrics struct {
	registry *prometheus.Registry

	recomputationsTotal *prometheus.CounterVec
	fetchErrorsTotal    *prometheus.CounterVec
	viewCacheTotal      *prometheus.CounterVec
	heldItems           prometheus.Gauge
}

var _ interfaces.IPipelineMetrics = (*PipelineMetrics)(nil)

// NewPipelineMetrics creates and registers the pipeline metrics.
func NewPipelineMetrics(registry *prometheus.Registry) (*PipelineMetrics, error) {
	m := &PipelineMetrics{registry: registry}
	m.initMetrics()
	if err := registry.Register(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *PipelineMetrics) initMetrics() {
	m.recomputationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_recomputations_total",
			Help: "Total number of pipeline recomputations",
		},
		[]string{"origin", "applied"}, // origin: cache, live
	)

	m.fetchErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_source_fetch_errors_total",
			Help: "Total number of failed source collection fetches",
		},
		[]string{"source"},
	)

	m.viewCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_view_cache_requests_total",
			Help: "Total number of filtered view lookups by result",
		},
		[]string{"result"}, // result: hit, miss
	)

	m.heldItems = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "pipeline_items",
			Help: "Number of pipeline items held across all organizations",
		},
	)
}

// Describe implements the Collector interface
func (m *PipelineMetrics) Describe(ch chan<- *prometheus.Desc) {
	m.recomputationsTotal.Describe(ch)
	m.fetchErrorsTotal.Describe(ch)
	m.viewCacheTotal.Describe(ch)
	m.heldItems.Describe(ch)
}

// Collect implements the Collector interface
func (m *PipelineMetrics) Collect(ch chan<- prometheus.Metric) {
	m.recomputationsTotal.Collect(ch)
	m.fetchErrorsTotal.Collect(ch)
	m.viewCacheTotal.Collect(ch)
	m.heldItems.Collect(ch)
}

func (m *PipelineMetrics) RecordRecompute(origin string, applied bool) {
	m.recomputationsTotal.WithLabelValues(origin, strconv.FormatBool(applied)).Inc()
}

func (m *PipelineMetrics) RecordFetchError(source string) {
	m.fetchErrorsTotal.WithLabelValues(source).Inc()
}

func (m *PipelineMetrics) RecordViewCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.viewCacheTotal.WithLabelValues(result).Inc()
}

func (m *PipelineMetrics) AddHeldItems(delta int) {
	m.heldItems.Add(float64(delta))
}

// NewRegistry returns a registry carrying the Go runtime and process
// collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		Registry:      registry,
		ErrorHandling: promhttp.HTTPErrorOnError,
	})
}
