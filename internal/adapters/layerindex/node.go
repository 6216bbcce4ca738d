package layerindex

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/oematch/internal/adapters/cas"
	"go.trai.ch/oematch/internal/adapters/logger"
	"go.trai.ch/oematch/internal/core/ports"
)

// NodeID is the unique identifier for the catalog source Graft node.
const NodeID graft.ID = "adapter.catalog_source"

func init() {
	graft.Register(graft.Node[ports.CatalogSource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cas.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.CatalogSource, error) {
			store, err := graft.Dep[ports.SnapshotStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewSource(store, log), nil
		},
	})
}
