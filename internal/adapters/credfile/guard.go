// Package credfile materialises inline certificate material as short-lived files.
package credfile

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/bbstatus/internal/core/domain"
	"go.trai.ch/bbstatus/internal/core/ports"
	"go.trai.ch/zerr"
)

// tempPattern names the files created for inline PEM values.
const tempPattern = "bbstatus-credential-*.pem"

// Store implements ports.CredentialStore.
type Store struct {
	dir string
}

// NewStore creates a Store writing to the system temp directory.
func NewStore() *Store {
	return &Store{}
}

// NewStoreWithDir creates a Store writing to dir.
func NewStoreWithDir(dir string) *Store {
	return &Store{dir: dir}
}

// NewGuard returns an empty guard.
func (s *Store) NewGuard() ports.CredentialGuard {
	return &Guard{dir: s.dir}
}

// Guard implements ports.CredentialGuard. It tracks every file it creates
// and removes them all on Release.
type Guard struct {
	dir   string
	paths []string
}

// Materialize returns value when it names an existing regular file. Otherwise value is
// treated as PEM content and written to a new temp file readable only by the owner.
func (g *Guard) Materialize(value string) (string, error) {
	if info, err := os.Stat(value); err == nil && info.Mode().IsRegular() {
		return value, nil
	}

	f, err := os.CreateTemp(g.dir, tempPattern)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrTempFileCreate.Error())
	}
	// Registered before writing so a failed write is still cleaned up.
	g.paths = append(g.paths, f.Name())

	if _, err := f.WriteString(value); err != nil {
		_ = f.Close()
		return "", zerr.With(zerr.Wrap(err, domain.ErrTempFileCreate.Error()), "path", f.Name())
	}
	if err := f.Close(); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrTempFileCreate.Error()), "path", f.Name())
	}
	return f.Name(), nil
}

// Release removes every file created by the guard. Files already gone are ignored.
func (g *Guard) Release() error {
	var errs error
	for _, path := range g.paths {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "failed to remove temporary credential file"), "path", path))
		}
	}
	g.paths = nil
	return errs
}

// Paths returns the files currently owned by the guard.
func (g *Guard) Paths() []string {
	return append([]string(nil), g.paths...)
}
