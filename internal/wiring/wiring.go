// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/extq/internal/adapters/config"
	_ "go.trai.ch/extq/internal/adapters/git"
	_ "go.trai.ch/extq/internal/adapters/github"
	_ "go.trai.ch/extq/internal/adapters/logger"
	_ "go.trai.ch/extq/internal/adapters/nodejs"
	_ "go.trai.ch/extq/internal/adapters/shell"
	_ "go.trai.ch/extq/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/extq/internal/app"
	_ "go.trai.ch/extq/internal/engine/harness"
)
