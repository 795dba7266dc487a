// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/nuprune/internal/adapters/config"
	_ "go.trai.ch/nuprune/internal/adapters/cpm"
	_ "go.trai.ch/nuprune/internal/adapters/fs"
	_ "go.trai.ch/nuprune/internal/adapters/logger"
	_ "go.trai.ch/nuprune/internal/adapters/msbuild"
	_ "go.trai.ch/nuprune/internal/adapters/namespaces"
	_ "go.trai.ch/nuprune/internal/adapters/scanner"
	_ "go.trai.ch/nuprune/internal/adapters/telemetry"
	_ "go.trai.ch/nuprune/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/nuprune/internal/app"
	_ "go.trai.ch/nuprune/internal/engine/analyzer"
)
