// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/zbowling/depwise/internal/adapters/cpython"
	_ "github.com/zbowling/depwise/internal/adapters/envfile"
	_ "github.com/zbowling/depwise/internal/adapters/fs"
	_ "github.com/zbowling/depwise/internal/adapters/logger"
	_ "github.com/zbowling/depwise/internal/adapters/pysrc"
	_ "github.com/zbowling/depwise/internal/adapters/wheel"
	// Register app nodes.
	_ "github.com/zbowling/depwise/internal/app"
)
