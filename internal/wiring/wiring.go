// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/modkit/internal/adapters/config"
	_ "go.trai.ch/modkit/internal/adapters/logger"
	_ "go.trai.ch/modkit/internal/adapters/savestore"
	_ "go.trai.ch/modkit/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/modkit/internal/adapters/world"
	// Register app nodes.
	_ "go.trai.ch/modkit/internal/app"
)
