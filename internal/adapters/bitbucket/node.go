package bitbucket

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bbstatus/internal/core/ports"
)

// NodeID is the unique identifier for the status sender Graft node.
const NodeID graft.ID = "adapter.status_sender"

func init() {
	graft.Register(graft.Node[ports.StatusSender]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StatusSender, error) {
			return New(), nil
		},
	})
}
