package pipeline

import (
	"math"
	"time"

	"crm_pipeline/internal/domain/entities"
)

const UnknownCustomerName = "Unknown"

// SourceDocument is the shape shared by quotes and invoices.
type SourceDocument struct {
	ID          string
	Number      string
	CustomerID  string
	QuoteID     string
	TotalAmount float64
	Status      string
	CreatedAt   time.Time
}

func FromQuote(q entities.Quote) SourceDocument {
	return SourceDocument{
		ID:          q.ID,
		Number:      q.QuoteNumber,
		CustomerID:  q.CustomerID,
		TotalAmount: q.TotalAmount,
		Status:      string(q.Status),
		CreatedAt:   q.CreatedAt,
	}
}

func FromInvoice(i entities.Invoice) SourceDocument {
	return SourceDocument{
		ID:          i.ID,
		Number:      i.InvoiceNumber,
		CustomerID:  i.CustomerID,
		QuoteID:     i.QuoteID,
		TotalAmount: i.TotalAmount,
		Status:      string(i.Status),
		CreatedAt:   i.CreatedAt,
	}
}

// CustomerLookup resolves customers by id.
type CustomerLookup map[string]entities.Customer

// NewCustomerLookup indexes customers by id. On duplicate ids the first
// occurrence wins.
func NewCustomerLookup(customers []entities.Customer) CustomerLookup {
	lookup := make(CustomerLookup, len(customers))
	for _, c := range customers {
		if _, ok := lookup[c.ID]; !ok {
			lookup[c.ID] = c
		}
	}
	return lookup
}

// Normalize maps a source document to a pipeline item. Stage and probability
// are left unset; see Classify. Negative or non-finite amounts become 0.
func Normalize(doc SourceDocument, t entities.SourceType, customers CustomerLookup) entities.PipelineItem {
	name, email := UnknownCustomerName, ""
	if c, ok := customers[doc.CustomerID]; ok {
		if c.Name != "" {
			name = c.Name
		}
		email = c.Email
	}

	return entities.PipelineItem{
		ID:            doc.ID,
		Type:          t,
		Number:        doc.Number,
		CustomerName:  name,
		CustomerEmail: email,
		TotalAmount:   sanitizeAmount(doc.TotalAmount),
		Status:        doc.Status,
		CreatedAt:     doc.CreatedAt,
		QuoteID:       doc.QuoteID,
	}
}

func sanitizeAmount(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
