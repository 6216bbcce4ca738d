package remediator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/oematch/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/oematch/internal/core/ports"
)

// NodeID is the unique identifier for the remediator Graft node.
const NodeID graft.ID = "engine.remediator"

func init() {
	graft.Register(graft.Node[*Remediator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Remediator, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
