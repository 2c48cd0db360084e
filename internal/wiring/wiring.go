// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pkgr/internal/adapters/config"
	_ "go.trai.ch/pkgr/internal/adapters/feed"
	_ "go.trai.ch/pkgr/internal/adapters/logger"
	_ "go.trai.ch/pkgr/internal/adapters/metrics"
	_ "go.trai.ch/pkgr/internal/adapters/project"
	_ "go.trai.ch/pkgr/internal/adapters/solver"
	_ "go.trai.ch/pkgr/internal/adapters/telemetry"
	_ "go.trai.ch/pkgr/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/pkgr/internal/app"
)
