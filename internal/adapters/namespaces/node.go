package namespaces

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nuprune/internal/core/ports"
)

// NodeID is the unique identifier for the namespace resolver Graft node.
const NodeID graft.ID = "adapter.namespaces"

func init() {
	graft.Register(graft.Node[ports.NamespaceResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.NamespaceResolver, error) {
			return NewDefault(), nil
		},
	})
}
