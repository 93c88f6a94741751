package ports

// RevisionResolver defines the interface for reading the checked out revision.
//
//go:generate mockgen -source=revision.go -destination=mocks/mock_revision.go -package=mocks
type RevisionResolver interface {
	// Head returns the commit hash HEAD points to in the repository containing dir.
	Head(dir string) (string, error)
}
