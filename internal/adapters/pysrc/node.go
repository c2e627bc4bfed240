package pysrc

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/zbowling/depwise/internal/core/ports"
)

// NodeID is the unique identifier for the import scanner Graft node.
const NodeID graft.ID = "adapter.import_scanner"

func init() {
	graft.Register(graft.Node[ports.ImportScanner]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ImportScanner, error) {
			return NewScanner(), nil
		},
	})
}
