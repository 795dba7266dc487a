package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nuprune/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/nuprune/internal/adapters/cpm"        //nolint:depguard // Wired in app layer
	"go.trai.ch/nuprune/internal/adapters/fs"         //nolint:depguard // Wired in app layer
	"go.trai.ch/nuprune/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/nuprune/internal/adapters/msbuild"    //nolint:depguard // Wired in app layer
	"go.trai.ch/nuprune/internal/adapters/namespaces" //nolint:depguard // Wired in app layer
	"go.trai.ch/nuprune/internal/adapters/telemetry"  //nolint:depguard // Wired in app layer
	"go.trai.ch/nuprune/internal/adapters/watcher"    //nolint:depguard // Wired in app layer
	"go.trai.ch/nuprune/internal/core/ports"
	"go.trai.ch/nuprune/internal/engine/analyzer"
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
			msbuild.LoaderNodeID,
			msbuild.ExtractorNodeID,
			cpm.NodeID,
			analyzer.NodeID,
			namespaces.NodeID,
			config.NodeID,
			fs.FileSystemNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			watcher.FactoryNodeID,
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
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.SolutionLoader](ctx)
	if err != nil {
		return nil, err
	}
	extractor, err := graft.Dep[ports.ReferenceExtractor](ctx)
	if err != nil {
		return nil, err
	}
	central, err := graft.Dep[ports.CentralPackageResolver](ctx)
	if err != nil {
		return nil, err
	}
	engine, err := graft.Dep[*analyzer.Analyzer](ctx)
	if err != nil {
		return nil, err
	}
	resolver, err := graft.Dep[ports.NamespaceResolver](ctx)
	if err != nil {
		return nil, err
	}
	loaderCfg, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	fsys, err := graft.Dep[fs.FileSystem](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}
	watchers, err := graft.Dep[ports.WatcherFactory](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, extractor, central, engine, resolver, loaderCfg, fsys, log, tracer).
		WithWatcherFactory(watchers), nil
}
