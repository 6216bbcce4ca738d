// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/oematch/internal/adapters/bitbake"
	_ "go.trai.ch/oematch/internal/adapters/blackduck"
	_ "go.trai.ch/oematch/internal/adapters/cas"
	_ "go.trai.ch/oematch/internal/adapters/config"
	_ "go.trai.ch/oematch/internal/adapters/cvecheck"
	_ "go.trai.ch/oematch/internal/adapters/layerindex"
	_ "go.trai.ch/oematch/internal/adapters/logger"
	_ "go.trai.ch/oematch/internal/adapters/metrics"
	_ "go.trai.ch/oematch/internal/adapters/report"
	_ "go.trai.ch/oematch/internal/adapters/spdx"
	_ "go.trai.ch/oematch/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/oematch/internal/app"
	_ "go.trai.ch/oematch/internal/engine/remediator"
)
