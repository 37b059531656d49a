package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/extq/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/extq/internal/adapters/git"       //nolint:depguard // Wired in app layer
	"go.trai.ch/extq/internal/adapters/github"    //nolint:depguard // Wired in app layer
	"go.trai.ch/extq/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/extq/internal/adapters/nodejs"    //nolint:depguard // Wired in app layer
	"go.trai.ch/extq/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/extq/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/extq/internal/core/ports"
	"go.trai.ch/extq/internal/engine/harness"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			github.NodeID,
			git.NodeID,
			shell.NodeID,
			nodejs.NodeID,
			telemetry.TracerNodeID,
			harness.NodeID,
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
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	releases, err := graft.Dep[ports.ReleaseFinder](ctx)
	if err != nil {
		return nil, err
	}

	vcs, err := graft.Dep[ports.SourceControl](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[ports.CommandRunner](ctx)
	if err != nil {
		return nil, err
	}

	libLoader, err := graft.Dep[ports.LibraryLoader](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	h, err := graft.Dep[*harness.Harness](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, releases, vcs, runner, libLoader, tracer, h), nil
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

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
