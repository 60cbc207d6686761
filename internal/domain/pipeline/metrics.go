package pipeline

import "crm_pipeline/internal/domain/entities"

// ForecastMetrics summarizes a filtered pipeline.
type ForecastMetrics struct {
	ItemCount     int     `json:"item_count"`
	TotalValue    float64 `json:"total_value"`
	WeightedValue float64 `json:"weighted_value"`
}

// Metrics sums item values and probability weighted values.
func Metrics(items []entities.PipelineItem) ForecastMetrics {
	m := ForecastMetrics{ItemCount: len(items)}
	for _, item := range items {
		m.TotalValue += item.TotalAmount
		m.WeightedValue += item.TotalAmount * item.Probability
	}
	return m
}
