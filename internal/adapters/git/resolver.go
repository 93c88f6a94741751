// Package git reads revision information from the local repository.
package git

import (
	gogit "github.com/go-git/go-git/v5"
	"go.trai.ch/bbstatus/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolver implements ports.RevisionResolver using go-git.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Head returns the commit HEAD points to. dir may be any directory inside the work tree.
func (r *Resolver) Head(dir string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrRepositoryOpen.Error()), "dir", dir)
	}

	ref, err := repo.Head()
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrRepositoryHead.Error()), "dir", dir)
	}
	return ref.Hash().String(), nil
}
