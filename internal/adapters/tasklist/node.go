package tasklist

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gantt/internal/core/ports"
)

// NodeID is the unique identifier for the task source Graft node.
const NodeID graft.ID = "adapter.tasklist"

func init() {
	graft.Register(graft.Node[ports.TaskSource]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TaskSource, error) {
			return NewSource(), nil
		},
	})
}
