package cpm

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nuprune/internal/adapters/fs"
	"go.trai.ch/nuprune/internal/adapters/logger"
	"go.trai.ch/nuprune/internal/core/ports"
)

// NodeID is the unique identifier for the central package resolver Graft node.
const NodeID graft.ID = "adapter.cpm"

func init() {
	graft.Register(graft.Node[ports.CentralPackageResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.FileSystemNodeID, fs.HasherNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.CentralPackageResolver, error) {
			fsys, err := graft.Dep[fs.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewCache(NewResolver(fsys, hasher, log)), nil
		},
	})
}
