package pipeline

import (
	"slices"

	"crm_pipeline/internal/domain/entities"
)

// Aggregate builds the pipeline from both source collections.
//
// Documents whose status has no stage are dropped. The result is ordered
// newest first. A quote and the invoice converted from it are two distinct
// items; nothing here deduplicates them.
func Aggregate(quotes []entities.Quote, invoices []entities.Invoice, customers []entities.Customer) []entities.PipelineItem {
	lookup := NewCustomerLookup(customers)
	items := make([]entities.PipelineItem, 0, len(quotes)+len(invoices))

	for _, q := range quotes {
		if item, ok := derive(FromQuote(q), entities.SourceTypeQuote, lookup); ok {
			items = append(items, item)
		}
	}
	for _, inv := range invoices {
		if item, ok := derive(FromInvoice(inv), entities.SourceTypeInvoice, lookup); ok {
			items = append(items, item)
		}
	}

	slices.SortStableFunc(items, func(a, b entities.PipelineItem) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return items
}

func derive(doc SourceDocument, t entities.SourceType, lookup CustomerLookup) (entities.PipelineItem, bool) {
	c, ok := Classify(t, doc.Status)
	if !ok {
		return entities.PipelineItem{}, false
	}
	item := Normalize(doc, t, lookup)
	item.Stage = c.Stage
	item.Probability = c.Probability
	return item, true
}
