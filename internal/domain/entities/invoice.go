package entities

import "time"

// InvoiceStatus is the lifecycle status of an invoice as stored by the CRM.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusViewed    InvoiceStatus = "viewed"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusPartial   InvoiceStatus = "partial"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
	InvoiceStatusRefunded  InvoiceStatus = "refunded"
)

// Invoice is an invoice owned by an organization.
//
// QuoteID is set when the invoice was converted from a quote. The quote is
// not touched by the conversion, so both documents keep existing.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (organization_id-index): organization_id
type Invoice struct {
	ID             string        `json:"id"`
	OrganizationID string        `json:"organization_id"`
	InvoiceNumber  string        `json:"invoice_number"`
	CustomerID     string        `json:"customer_id"`
	QuoteID        string        `json:"quote_id,omitempty"`
	TotalAmount    float64       `json:"total_amount"`
	Status         InvoiceStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
}
