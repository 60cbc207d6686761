package entities

import "time"

// SourceType tells which collection a pipeline item was derived from.
type SourceType string

const (
	SourceTypeQuote   SourceType = "quote"
	SourceTypeInvoice SourceType = "invoice"
)

func (t SourceType) IsValid() bool {
	return t == SourceTypeQuote || t == SourceTypeInvoice
}

// PipelineItem is a quote or invoice positioned in the sales funnel.
//
// Items are derived, never persisted. IDs are only unique within their
// source type, use Key() when an aggregate-wide identity is needed.
type PipelineItem struct {
	ID            string     `json:"id"`
	Type          SourceType `json:"type"`
	Number        string     `json:"number"`
	CustomerName  string     `json:"customer_name"`
	CustomerEmail string     `json:"customer_email"`
	TotalAmount   float64    `json:"total_amount"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	Stage         Stage      `json:"stage"`
	Probability   float64    `json:"probability"`
	QuoteID       string     `json:"quote_id,omitempty"`
}

// Key returns the (type, id) identity of the item.
func (p PipelineItem) Key() string {
	return ItemKey(p.Type, p.ID)
}

func ItemKey(t SourceType, id string) string {
	return string(t) + ":" + id
}
