package envfile

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/zbowling/depwise/internal/core/ports"
)

// NodeID is the unique identifier for the dependency parser Graft node.
const NodeID graft.ID = "adapter.dependency_parser"

func init() {
	graft.Register(graft.Node[ports.DependencyParser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DependencyParser, error) {
			return NewParser(), nil
		},
	})
}
