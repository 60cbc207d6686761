package entities

import "time"

// QuoteStatus is the lifecycle status of a quote as stored by the CRM.
//
// The value is free text on the wire; the constants below are the ones the
// CRM writes today. Unknown values are kept verbatim.
type QuoteStatus string

const (
	QuoteStatusDraft     QuoteStatus = "draft"
	QuoteStatusSent      QuoteStatus = "sent"
	QuoteStatusViewed    QuoteStatus = "viewed"
	QuoteStatusAccepted  QuoteStatus = "accepted"
	QuoteStatusDeclined  QuoteStatus = "declined"
	QuoteStatusExpired   QuoteStatus = "expired"
	QuoteStatusConverted QuoteStatus = "converted"
)

// Quote is a sales quote owned by an organization.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (organization_id-index): organization_id
type Quote struct {
	ID             string      `json:"id"`
	OrganizationID string      `json:"organization_id"`
	QuoteNumber    string      `json:"quote_number"`
	CustomerID     string      `json:"customer_id"`
	TotalAmount    float64     `json:"total_amount"`
	Status         QuoteStatus `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
}
