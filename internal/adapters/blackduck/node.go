package blackduck

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/oematch/internal/adapters/logger"
	"go.trai.ch/oematch/internal/core/ports"
)

// NodeID is the unique identifier for the vulnerability service Graft node.
const NodeID graft.ID = "adapter.vulnerability_service"

func init() {
	graft.Register(graft.Node[ports.VulnerabilityService]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.VulnerabilityService, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewService(log), nil
		},
	})
}
