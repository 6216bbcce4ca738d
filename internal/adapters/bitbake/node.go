package bitbake

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/oematch/internal/adapters/logger"
	"go.trai.ch/oematch/internal/core/ports"
)

// NodeID is the unique identifier for the inventory loader Graft node.
const NodeID graft.ID = "adapter.inventory_loader"

func init() {
	graft.Register(graft.Node[ports.InventoryLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.InventoryLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
