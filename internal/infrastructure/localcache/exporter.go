package localcache

import (
	"context"
	"fmt"

	"crm_pipeline/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Exporter copies the live source collections of an organization into a
// SnapshotStore. It runs outside the pipeline service, which only reads
// snapshots.
type Exporter struct {
	quotes    interfaces.IQuoteRepository
	invoices  interfaces.IInvoiceRepository
	customers interfaces.ICustomerRepository
	store     *SnapshotStore
	logger    *zap.Logger
}

func NewExporter(
	quotes interfaces.IQuoteRepository,
	invoices interfaces.IInvoiceRepository,
	customers interfaces.ICustomerRepository,
	store *SnapshotStore,
	logger *zap.Logger,
) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{
		quotes:    quotes,
		invoices:  invoices,
		customers: customers,
		store:     store,
		logger:    logger.Named("snapshot_exporter"),
	}
}

// Export fetches the three collections and replaces the stored snapshot.
// Nothing is written unless every fetch succeeds.
func (e *Exporter) Export(ctx context.Context, organizationID string) (interfaces.Snapshot, error) {
	var snap interfaces.Snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		quotes, err := e.quotes.ListByOrganization(gctx, organizationID)
		if err != nil {
			return fmt.Errorf("export quotes: %w", err)
		}
		snap.Quotes = quotes
		return nil
	})
	g.Go(func() error {
		invoices, err := e.invoices.ListByOrganization(gctx, organizationID)
		if err != nil {
			return fmt.Errorf("export invoices: %w", err)
		}
		snap.Invoices = invoices
		return nil
	})
	g.Go(func() error {
		customers, err := e.customers.ListByOrganization(gctx, organizationID)
		if err != nil {
			return fmt.Errorf("export customers: %w", err)
		}
		snap.Customers = customers
		return nil
	})
	if err := g.Wait(); err != nil {
		return interfaces.Snapshot{}, err
	}

	if err := e.store.Save(ctx, organizationID, snap); err != nil {
		return interfaces.Snapshot{}, err
	}
	e.logger.Info("snapshot exported",
		zap.String("organization_id", organizationID),
		zap.Int("quotes", len(snap.Quotes)),
		zap.Int("invoices", len(snap.Invoices)),
		zap.Int("customers", len(snap.Customers)))
	return snap, nil
}
