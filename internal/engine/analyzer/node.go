package analyzer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nuprune/internal/adapters/fs"         //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nuprune/internal/adapters/namespaces" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nuprune/internal/adapters/scanner"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nuprune/internal/adapters/telemetry"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nuprune/internal/core/ports"
)

// NodeID is the unique identifier for the analyzer Graft node.
const NodeID graft.ID = "engine.analyzer"

func init() {
	graft.Register(graft.Node[*Analyzer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			scanner.NodeID,
			fs.DiscovererNodeID,
			namespaces.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Analyzer, error) {
			scan, err := graft.Dep[ports.SourceScanner](ctx)
			if err != nil {
				return nil, err
			}
			discoverer, err := graft.Dep[ports.SourceDiscoverer](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[ports.NamespaceResolver](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return New(scan, discoverer, resolver, tracer), nil
		},
	})
}
