package msbuild

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nuprune/internal/adapters/fs"
	"go.trai.ch/nuprune/internal/adapters/logger"
	"go.trai.ch/nuprune/internal/core/ports"
)

const (
	// LoaderNodeID is the unique identifier for the solution loader Graft node.
	LoaderNodeID graft.ID = "adapter.msbuild.loader"
	// ExtractorNodeID is the unique identifier for the reference extractor Graft node.
	ExtractorNodeID graft.ID = "adapter.msbuild.extractor"
)

func init() {
	graft.Register(graft.Node[ports.SolutionLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.FileSystemNodeID, fs.WalkerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.SolutionLoader, error) {
			fsys, err := graft.Dep[fs.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(fsys, walker, log), nil
		},
	})

	graft.Register(graft.Node[ports.ReferenceExtractor]{
		ID:        ExtractorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.FileSystemNodeID},
		Run: func(ctx context.Context) (ports.ReferenceExtractor, error) {
			fsys, err := graft.Dep[fs.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			return NewExtractor(fsys), nil
		},
	})
}
