package cvecheck

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/oematch/internal/adapters/logger"
	"go.trai.ch/oematch/internal/core/ports"
)

// NodeID is the unique identifier for the patched CVE source Graft node.
const NodeID graft.ID = "adapter.patched_cve_source"

func init() {
	graft.Register(graft.Node[ports.PatchedCVESource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.PatchedCVESource, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewParser(log), nil
		},
	})
}
