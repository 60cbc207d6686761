package interfaces

import (
	"context"
	"crm_pipeline/internal/domain/entities"
)

// ICustomerRepository abstracts read access to the customers store.
//
//go:generate mockgen -source=customer_repository_interface.go -destination=mocks/mock_customer_repository.go -package=mock_interfaces

type ICustomerRepository interface {
	ListByOrganization(ctx context.Context, organizationID string) ([]entities.Customer, error)
}
