package spdx

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/oematch/internal/core/ports"
)

// NodeID is the unique identifier for the SPDX writer Graft node.
const NodeID graft.ID = "adapter.sbom_writer"

func init() {
	graft.Register(graft.Node[ports.SBOMWriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SBOMWriter, error) {
			return NewWriter(), nil
		},
	})
}
