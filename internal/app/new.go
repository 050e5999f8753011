package app

import (
	"context"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"quantum/internal/core"
)

// New scaffolds a fresh package: manifest, src/main.qm, .gitignore,
// and README.md.
func (s Service) New(ctx context.Context, req NewRequest) (NewResult, error) {
	if err := core.ValidatePackageName(req.Name); err != nil {
		return NewResult{}, err
	}

	base := req.Dir
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return NewResult{}, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to determine working directory").
				WithCause(err)
		}
		base = wd
	}

	root := base
	if !req.Here {
		root = filepath.Join(base, req.Name)
		if _, err := os.Stat(root); err == nil {
			return NewResult{}, errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg("directory already exists: " + req.Name)
		}
	}

	if err := s.Scaffold.Create(req.Name, root); err != nil {
		return NewResult{}, err
	}
	return NewResult{Root: root}, nil
}
