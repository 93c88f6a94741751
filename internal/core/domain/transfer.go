package domain

import "fmt"

// Exit codes reported when the HTTP transfer cannot be performed.
// The values follow curl so that pipelines written against curl keep working.
const (
	ExitTransferUnknown   = 1
	ExitHostNotResolved   = 6
	ExitConnectFailed     = 7
	ExitTimeout           = 28
	ExitTLSHandshake      = 35
	ExitReceiveFailed     = 56
	ExitClientCertProblem = 58
	ExitPeerCertInvalid   = 60
)

// TransferError reports that the status request never completed a round trip.
type TransferError struct {
	Code int
	Err  error
}

// Error implements error.
func (e *TransferError) Error() string {
	return fmt.Sprintf("%s (exit code %d): %v", ErrTransferFailed.Error(), e.Code, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransferError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code for this failure.
func (e *TransferError) ExitCode() int {
	return e.Code
}
