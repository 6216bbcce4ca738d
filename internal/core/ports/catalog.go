package ports

import (
	"context"

	"go.trai.ch/oematch/internal/core/domain"
)

//go:generate mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks

// CatalogSource loads a complete layer index snapshot.
type CatalogSource interface {
	// Load returns the catalog, from the snapshot cache when possible.
	Load(ctx context.Context, opts domain.CatalogOptions) (*domain.Catalog, error)
}

// SnapshotStore persists raw layer index responses between runs.
type SnapshotStore interface {
	// Get returns the cached bytes for kind under root, or nil, nil when absent.
	Get(root, kind string) ([]byte, error)

	// Put stores the bytes for kind under root.
	Put(root, kind string, data []byte) error

	// Clear removes every snapshot under root.
	Clear(root string) error
}
