package interfaces

import (
	"context"
	"crm_pipeline/internal/domain/entities"
)

// Snapshot is a previously serialized copy of the three source collections.
type Snapshot struct {
	Quotes    []entities.Quote
	Invoices  []entities.Invoice
	Customers []entities.Customer
}

// ISnapshotCache is the read side of the local snapshot kept per
// organization, used as a placeholder before live data arrives. Load reports
// false when no snapshot exists.
//
//go:generate mockgen -source=snapshot_cache_interface.go -destination=mocks/mock_snapshot_cache.go -package=mock_interfaces

type ISnapshotCache interface {
	Load(ctx context.Context, organizationID string) (Snapshot, bool, error)
}
