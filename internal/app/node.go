package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/zbowling/depwise/internal/adapters/cpython"
	"github.com/zbowling/depwise/internal/adapters/envfile"
	"github.com/zbowling/depwise/internal/adapters/fs"
	"github.com/zbowling/depwise/internal/adapters/logger"
	"github.com/zbowling/depwise/internal/adapters/pysrc"
	"github.com/zbowling/depwise/internal/adapters/wheel"
	"github.com/zbowling/depwise/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles everything the CLI entry point needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cpython.NodeID,
			fs.NodeID,
			envfile.NodeID,
			pysrc.NodeID,
			wheel.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	interp, err := graft.Dep[ports.Interpreter](ctx)
	if err != nil {
		return nil, err
	}

	scanner, err := graft.Dep[ports.PackageScanner](ctx)
	if err != nil {
		return nil, err
	}

	parser, err := graft.Dep[ports.DependencyParser](ctx)
	if err != nil {
		return nil, err
	}

	imports, err := graft.Dep[ports.ImportScanner](ctx)
	if err != nil {
		return nil, err
	}

	inspector, err := graft.Dep[ports.PackageInspector](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(interp, scanner, parser, imports, inspector, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
	}, nil
}
