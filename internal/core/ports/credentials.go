package ports

// CredentialGuard owns temporary files holding inline certificate material.
//
//go:generate mockgen -source=credentials.go -destination=mocks/mock_credentials.go -package=mocks
type CredentialGuard interface {
	// Materialize returns value unchanged if it names an existing file.
	// Otherwise it writes value to a new temporary file owned by the guard and returns its path.
	Materialize(value string) (string, error)

	// Release deletes every temporary file created by the guard. It is safe to call more than once.
	Release() error
}

// CredentialStore creates guards.
type CredentialStore interface {
	// NewGuard returns an empty guard.
	NewGuard() CredentialGuard
}
