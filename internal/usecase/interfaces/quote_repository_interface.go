package interfaces

import (
	"context"
	"crm_pipeline/internal/domain/entities"
)

// IQuoteRepository abstracts read access to the quotes store.
//
//go:generate mockgen -source=quote_repository_interface.go -destination=mocks/mock_quote_repository.go -package=mock_interfaces

type IQuoteRepository interface {
	ListByOrganization(ctx context.Context, organizationID string) ([]entities.Quote, error)
}
