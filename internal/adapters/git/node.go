package git

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bbstatus/internal/core/ports"
)

// NodeID is the unique identifier for the revision resolver Graft node.
const NodeID graft.ID = "adapter.revision_resolver"

func init() {
	graft.Register(graft.Node[ports.RevisionResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RevisionResolver, error) {
			return NewResolver(), nil
		},
	})
}
