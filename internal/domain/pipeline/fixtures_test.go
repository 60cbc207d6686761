package pipeline

import (
	"time"

	"crm_pipeline/internal/domain/entities"
)

var baseTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func day(n int) time.Time {
	return baseTime.AddDate(0, 0, n)
}

func item(typ entities.SourceType, id, number, customer string, amount float64, stage entities.Stage, created time.Time) entities.PipelineItem {
	return entities.PipelineItem{
		ID:           id,
		Type:         typ,
		Number:       number,
		CustomerName: customer,
		TotalAmount:  amount,
		Status:       "sent",
		CreatedAt:    created,
		Stage:        stage,
		Probability:  stage.Probability(),
	}
}

func sampleItems() []entities.PipelineItem {
	return []entities.PipelineItem{
		item(entities.SourceTypeInvoice, "i2", "INV-002", "Zeta Corp", 500, entities.StageWon, day(5)),
		item(entities.SourceTypeQuote, "q1", "QT-001", "Beta Inc", 1000, entities.StageProposal, day(4)),
		item(entities.SourceTypeInvoice, "i1", "INV-001", "acme", 2000, entities.StageNegotiation, day(3)),
		item(entities.SourceTypeQuote, "q2", "QT-002", "Alpha LLC", 750, entities.StageProposal, day(2)),
		item(entities.SourceTypeQuote, "q3", "QT-003", "Beta Inc", 250, entities.StageProposal, day(1)),
	}
}

func keys(items []entities.PipelineItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Key()
	}
	return out
}
