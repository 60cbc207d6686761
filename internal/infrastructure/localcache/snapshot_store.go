// Package localcache keeps per-organization snapshots of the source
// collections on local disk.
//
// Layout: <dir>/<organization_id>/<key>.json where key is one of the
// collection keys below and each file holds a JSON array.
package localcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"crm_pipeline/internal/usecase/interfaces"
)

const (
	QuotesKey    = "cxtrack_demo_quotes"
	InvoicesKey  = "cxtrack_demo_invoices"
	CustomersKey = "cxtrack_demo_customers"
)

var ErrInvalidOrganizationDir = errors.New("organization id is not a valid directory name")

// SnapshotStore is a file implementation of interfaces.ISnapshotCache. Only
// the Exporter writes to it.
type SnapshotStore struct {
	dir string
}

var _ interfaces.ISnapshotCache = (*SnapshotStore)(nil)

func NewSnapshotStore(dir string) *SnapshotStore {
	return &SnapshotStore{dir: dir}
}

// Load reads the snapshot of organizationID. A missing directory or file
// means no snapshot for that collection; corrupt JSON is an error.
func (s *SnapshotStore) Load(ctx context.Context, organizationID string) (interfaces.Snapshot, bool, error) {
	orgDir, err := s.orgDir(organizationID)
	if err != nil {
		return interfaces.Snapshot{}, false, err
	}

	var snap interfaces.Snapshot
	found := false
	for _, f := range []struct {
		key string
		dst any
	}{
		{QuotesKey, &snap.Quotes},
		{InvoicesKey, &snap.Invoices},
		{CustomersKey, &snap.Customers},
	} {
		if err := ctx.Err(); err != nil {
			return interfaces.Snapshot{}, false, err
		}
		ok, err := readJSON(filepath.Join(orgDir, f.key+".json"), f.dst)
		if err != nil {
			return interfaces.Snapshot{}, false, err
		}
		found = found || ok
	}
	return snap, found, nil
}

// Save replaces the snapshot of organizationID. Each file is written to a
// temporary file of its own and renamed into place, so concurrent writers
// never observe a partial file.
func (s *SnapshotStore) Save(ctx context.Context, organizationID string, snap interfaces.Snapshot) error {
	orgDir, err := s.orgDir(organizationID)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(orgDir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	for _, f := range []struct {
		key string
		src any
	}{
		{QuotesKey, nonNil(snap.Quotes)},
		{InvoicesKey, nonNil(snap.Invoices)},
		{CustomersKey, nonNil(snap.Customers)},
	} {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := writeJSON(filepath.Join(orgDir, f.key+".json"), f.src); err != nil {
			return err
		}
	}
	return nil
}

func (s *SnapshotStore) orgDir(organizationID string) (string, error) {
	id := strings.TrimSpace(organizationID)
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidOrganizationDir, organizationID)
	}
	return filepath.Join(s.dir, id), nil
}

func readJSON(path string, dst any) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return true, nil
}

func writeJSON(path string, src any) error {
	data, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
