package ports

import (
	"context"
	"io"

	"go.trai.ch/bbstatus/internal/core/domain"
)

// StatusSender defines the interface for posting a build status.
//
//go:generate mockgen -source=sender.go -destination=mocks/mock_sender.go -package=mocks
type StatusSender interface {
	// Send posts req using auth and writes the raw response, headers included, to out.
	// A non-2xx response is not an error. A failed transfer returns *domain.TransferError.
	Send(ctx context.Context, req domain.BuildStatusRequest, auth domain.AuthMethod, out io.Writer) error
}
