package interfaces

// IPipelineMetrics receives pipeline instrumentation events.
//
//go:generate mockgen -source=pipeline_metrics_interface.go -destination=mocks/mock_pipeline_metrics.go -package=mock_interfaces

type IPipelineMetrics interface {
	RecordRecompute(origin string, applied bool)
	RecordFetchError(source string)
	RecordViewCache(hit bool)
	AddHeldItems(delta int)
}
