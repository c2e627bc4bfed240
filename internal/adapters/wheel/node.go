package wheel

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/zbowling/depwise/internal/adapters/pysrc"
	"github.com/zbowling/depwise/internal/core/ports"
)

// NodeID is the unique identifier for the package inspector Graft node.
const NodeID graft.ID = "adapter.package_inspector"

func init() {
	graft.Register(graft.Node[ports.PackageInspector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{pysrc.NodeID},
		Run: func(ctx context.Context) (ports.PackageInspector, error) {
			scanner, err := graft.Dep[ports.ImportScanner](ctx)
			if err != nil {
				return nil, err
			}
			return NewInspector(scanner), nil
		},
	})
}
