package localcache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"crm_pipeline/internal/domain/entities"
	"crm_pipeline/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotStore_Load(t *testing.T) {
	t.Run("missing directory means no snapshot", func(t *testing.T) {
		store := NewSnapshotStore(filepath.Join(t.TempDir(), "absent"))

		snap, ok, err := store.Load(context.Background(), "org-1")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, snap.Quotes)
	})

	t.Run("partial snapshot", func(t *testing.T) {
		dir := t.TempDir()
		orgDir := filepath.Join(dir, "org-1")
		require.NoError(t, os.MkdirAll(orgDir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(orgDir, QuotesKey+".json"),
			[]byte(`[{"id":"q1","quote_number":"QT-1","customer_id":"c1","total_amount":120.5,"status":"sent","created_at":"2024-02-01T10:00:00Z"}]`), 0o644))

		snap, ok, err := NewSnapshotStore(dir).Load(context.Background(), "org-1")
		require.NoError(t, err)
		assert.True(t, ok)
		require.Len(t, snap.Quotes, 1)
		assert.Equal(t, "QT-1", snap.Quotes[0].QuoteNumber)
		assert.Equal(t, 120.5, snap.Quotes[0].TotalAmount)
		assert.Equal(t, entities.QuoteStatusSent, snap.Quotes[0].Status)
		assert.Nil(t, snap.Invoices)
	})

	t.Run("corrupt file is an error", func(t *testing.T) {
		dir := t.TempDir()
		orgDir := filepath.Join(dir, "org-1")
		require.NoError(t, os.MkdirAll(orgDir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(orgDir, InvoicesKey+".json"), []byte(`{not json`), 0o644))

		_, ok, err := NewSnapshotStore(dir).Load(context.Background(), "org-1")
		assert.Error(t, err)
		assert.False(t, ok)
	})

	t.Run("organizations do not share snapshots", func(t *testing.T) {
		dir := t.TempDir()
		store := NewSnapshotStore(dir)
		require.NoError(t, store.Save(context.Background(), "org-a", interfaces.Snapshot{
			Customers: []entities.Customer{{ID: "c1", Name: "Acme"}},
		}))

		_, ok, err := store.Load(context.Background(), "org-b")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestSnapshotStore_SaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewSnapshotStore(dir)
	created := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	in := interfaces.Snapshot{
		Quotes:    []entities.Quote{{ID: "q1", OrganizationID: "org-1", QuoteNumber: "QT-1", TotalAmount: 10, Status: entities.QuoteStatusDraft, CreatedAt: created}},
		Invoices:  []entities.Invoice{{ID: "i1", OrganizationID: "org-1", InvoiceNumber: "INV-1", QuoteID: "q1", TotalAmount: 10, Status: entities.InvoiceStatusPaid, CreatedAt: created}},
		Customers: nil,
	}
	require.NoError(t, store.Save(context.Background(), "org-1", in))

	data, err := os.ReadFile(filepath.Join(dir, "org-1", CustomersKey+".json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	out, ok, err := store.Load(context.Background(), "org-1")
	require.NoError(t, err)
	assert.True(t, ok)
	require.Len(t, out.Quotes, 1)
	require.Len(t, out.Invoices, 1)
	assert.Equal(t, "q1", out.Invoices[0].QuoteID)
	assert.True(t, out.Quotes[0].CreatedAt.Equal(created))
	assert.Empty(t, out.Customers)

	entries, err := os.ReadDir(filepath.Join(dir, "org-1"))
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestSnapshotStore_ConcurrentSaves(t *testing.T) {
	dir := t.TempDir()
	store := NewSnapshotStore(dir)

	const writers = 50
	errs := make(chan error, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- store.Save(context.Background(), "org-1", interfaces.Snapshot{
				Quotes:   []entities.Quote{{ID: "q1", Status: entities.QuoteStatusSent}},
				Invoices: []entities.Invoice{{ID: "i1", Status: entities.InvoiceStatusPaid}},
			})
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	snap, ok, err := store.Load(context.Background(), "org-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, snap.Quotes, 1)
	assert.Len(t, snap.Invoices, 1)

	// Temporary files never outlive a save.
	entries, err := os.ReadDir(filepath.Join(dir, "org-1"))
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestSnapshotStore_InvalidOrganization(t *testing.T) {
	store := NewSnapshotStore(t.TempDir())
	for _, id := range []string{"", " ", "..", "../etc", `a\b`} {
		_, _, err := store.Load(context.Background(), id)
		assert.True(t, errors.Is(err, ErrInvalidOrganizationDir), "id %q", id)

		err = store.Save(context.Background(), id, interfaces.Snapshot{})
		assert.True(t, errors.Is(err, ErrInvalidOrganizationDir), "id %q", id)
	}
}

func TestSnapshotStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewSnapshotStore(t.TempDir()).Load(ctx, "org-1")
	assert.ErrorIs(t, err, context.Canceled)
}
