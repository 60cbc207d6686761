package pipeline

import "crm_pipeline/internal/domain/entities"

// Classification is the stage assigned to a source document.
type Classification struct {
	Stage       entities.Stage
	Probability float64
}

func classification(s entities.Stage) Classification {
	return Classification{Stage: s, Probability: s.Probability()}
}

// Classify assigns a stage to a document of type t with the given status.
//
// The boolean is false when the document has no place in the pipeline
// (accepted or declined quotes, overdue or cancelled invoices, ...). That is
// an expected outcome, not an error.
func Classify(t entities.SourceType, status string) (Classification, bool) {
	switch t {
	case entities.SourceTypeQuote:
		switch entities.QuoteStatus(status) {
		case entities.QuoteStatusDraft, entities.QuoteStatusSent, entities.QuoteStatusViewed:
			return classification(entities.StageProposal), true
		}
	case entities.SourceTypeInvoice:
		switch entities.InvoiceStatus(status) {
		case entities.InvoiceStatusDraft, entities.InvoiceStatusSent, entities.InvoiceStatusViewed:
			return classification(entities.StageNegotiation), true
		case entities.InvoiceStatusPaid:
			return classification(entities.StageWon), true
		}
	}
	return Classification{}, false
}
