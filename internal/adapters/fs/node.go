package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/zbowling/depwise/internal/core/ports"
)

// NodeID is the unique identifier for the package scanner Graft node.
const NodeID graft.ID = "adapter.package_scanner"

func init() {
	graft.Register(graft.Node[ports.PackageScanner]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PackageScanner, error) {
			return NewScanner(), nil
		},
	})
}
