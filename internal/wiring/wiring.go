// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/bbstatus/internal/adapters/bitbucket"
	_ "go.trai.ch/bbstatus/internal/adapters/config"
	_ "go.trai.ch/bbstatus/internal/adapters/credfile"
	_ "go.trai.ch/bbstatus/internal/adapters/git"
	_ "go.trai.ch/bbstatus/internal/adapters/logger"
	// Register app nodes.
	_ "go.trai.ch/bbstatus/internal/app"
)
