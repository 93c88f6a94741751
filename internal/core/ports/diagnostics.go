package ports

import "go.trai.ch/bbstatus/internal/core/domain"

// Diagnostics prints the non-sensitive run summary.
//
//go:generate mockgen -source=diagnostics.go -destination=mocks/mock_diagnostics.go -package=mocks
type Diagnostics interface {
	// Inputs echoes the resolved inputs. Secrets are never printed.
	Inputs(in domain.Inputs, ci domain.CIContext, auth domain.AuthKind)

	// Request prints the endpoint and the state about to be sent.
	Request(req domain.BuildStatusRequest)

	// DryRun prints the JSON body that would have been sent.
	DryRun(body []byte)
}
