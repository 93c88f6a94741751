package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bbstatus/internal/adapters/bitbucket" //nolint:depguard // Wired in app layer
	"go.trai.ch/bbstatus/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/bbstatus/internal/adapters/credfile"  //nolint:depguard // Wired in app layer
	"go.trai.ch/bbstatus/internal/adapters/git"       //nolint:depguard // Wired in app layer
	"go.trai.ch/bbstatus/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/bbstatus/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			git.NodeID,
			credfile.NodeID,
			bitbucket.NodeID,
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
	loader, err := graft.Dep[ports.InputLoader](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.RevisionResolver](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.CredentialStore](ctx)
	if err != nil {
		return nil, err
	}

	sender, err := graft.Dep[ports.StatusSender](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, resolver, store, sender, log), nil
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
