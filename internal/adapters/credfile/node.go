package credfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bbstatus/internal/core/ports"
)

// NodeID is the unique identifier for the credential store Graft node.
const NodeID graft.ID = "adapter.credential_store"

func init() {
	graft.Register(graft.Node[ports.CredentialStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CredentialStore, error) {
			return NewStore(), nil
		},
	})
}
