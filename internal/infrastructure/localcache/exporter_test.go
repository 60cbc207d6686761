package localcache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"crm_pipeline/internal/domain/entities"
	mock_interfaces "crm_pipeline/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestExporter_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
	invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
	customers := mock_interfaces.NewMockICustomerRepository(ctrl)
	store := NewSnapshotStore(t.TempDir())

	quotes.EXPECT().ListByOrganization(gomock.Any(), "org-1").Return([]entities.Quote{{ID: "q1", Status: entities.QuoteStatusSent}}, nil)
	invoices.EXPECT().ListByOrganization(gomock.Any(), "org-1").Return([]entities.Invoice{{ID: "i1", Status: entities.InvoiceStatusPaid}}, nil)
	customers.EXPECT().ListByOrganization(gomock.Any(), "org-1").Return([]entities.Customer{{ID: "c1", Name: "Acme"}}, nil)

	snap, err := NewExporter(quotes, invoices, customers, store, zap.NewNop()).Export(context.Background(), "org-1")
	require.NoError(t, err)
	assert.Len(t, snap.Quotes, 1)

	loaded, ok, err := store.Load(context.Background(), "org-1")
	require.NoError(t, err)
	assert.True(t, ok)
	require.Len(t, loaded.Invoices, 1)
	assert.Equal(t, "i1", loaded.Invoices[0].ID)
	require.Len(t, loaded.Customers, 1)
	assert.Equal(t, "Acme", loaded.Customers[0].Name)
}

func TestExporter_FetchFailureWritesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	quotes := mock_interfaces.NewMockIQuoteRepository(ctrl)
	invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
	customers := mock_interfaces.NewMockICustomerRepository(ctrl)
	dir := t.TempDir()

	dbErr := errors.New("db down")
	quotes.EXPECT().ListByOrganization(gomock.Any(), "org-1").Return(nil, nil).AnyTimes()
	invoices.EXPECT().ListByOrganization(gomock.Any(), "org-1").Return(nil, dbErr)
	customers.EXPECT().ListByOrganization(gomock.Any(), "org-1").Return(nil, nil).AnyTimes()

	_, err := NewExporter(quotes, invoices, customers, NewSnapshotStore(dir), nil).Export(context.Background(), "org-1")
	assert.ErrorIs(t, err, dbErr)

	_, statErr := os.Stat(filepath.Join(dir, "org-1"))
	assert.True(t, os.IsNotExist(statErr))
}
