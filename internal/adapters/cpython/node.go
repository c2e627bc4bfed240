package cpython

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/zbowling/depwise/internal/core/ports"
)

// NodeID is the unique identifier for the interpreter Graft node.
const NodeID graft.ID = "adapter.interpreter"

func init() {
	graft.Register(graft.Node[ports.Interpreter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Interpreter, error) {
			return New()
		},
	})
}
