package interfaces

import (
	"context"
	"crm_pipeline/internal/domain/entities"
)

// IInvoiceRepository abstracts read access to the invoices store.
//
//go:generate mockgen -source=invoice_repository_interface.go -destination=mocks/mock_invoice_repository.go -package=mock_interfaces

type IInvoiceRepository interface {
	ListByOrganization(ctx context.Context, organizationID string) ([]entities.Invoice, error)
}
