package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/oematch/internal/adapters/bitbake"    //nolint:depguard // Wired in app layer
	"go.trai.ch/oematch/internal/adapters/blackduck"  //nolint:depguard // Wired in app layer
	"go.trai.ch/oematch/internal/adapters/cas"        //nolint:depguard // Wired in app layer
	"go.trai.ch/oematch/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/oematch/internal/adapters/cvecheck"   //nolint:depguard // Wired in app layer
	"go.trai.ch/oematch/internal/adapters/layerindex" //nolint:depguard // Wired in app layer
	"go.trai.ch/oematch/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/oematch/internal/adapters/metrics"    //nolint:depguard // Wired in app layer
	"go.trai.ch/oematch/internal/adapters/report"     //nolint:depguard // Wired in app layer
	"go.trai.ch/oematch/internal/adapters/spdx"       //nolint:depguard // Wired in app layer
	"go.trai.ch/oematch/internal/adapters/telemetry"  //nolint:depguard // Wired in app layer
	"go.trai.ch/oematch/internal/core/ports"
	"go.trai.ch/oematch/internal/engine/remediator"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			bitbake.NodeID,
			layerindex.NodeID,
			cas.NodeID,
			cvecheck.NodeID,
			blackduck.NodeID,
			spdx.NodeID,
			report.NodeID,
			metrics.NodeID,
			telemetry.TracerNodeID,
			remediator.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

//nolint:cyclop // one lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	inventory, err := graft.Dep[ports.InventoryLoader](ctx)
	if err != nil {
		return nil, err
	}

	source, err := graft.Dep[ports.CatalogSource](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.SnapshotStore](ctx)
	if err != nil {
		return nil, err
	}

	patched, err := graft.Dep[ports.PatchedCVESource](ctx)
	if err != nil {
		return nil, err
	}

	vulns, err := graft.Dep[ports.VulnerabilityService](ctx)
	if err != nil {
		return nil, err
	}

	sbom, err := graft.Dep[ports.SBOMWriter](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.ReportRenderer](ctx)
	if err != nil {
		return nil, err
	}

	recorder, err := graft.Dep[ports.Metrics](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	rem, err := graft.Dep[*remediator.Remediator](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, inventory, source, store, patched, vulns, sbom, renderer, recorder, tracer, rem, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:          app,
		Logger:       log,
		ConfigLoader: loader,
	}, nil
}
