package app

import (
	"context"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"quantum/internal/adapters"
	"quantum/internal/core"
	"quantum/internal/types"
)

// Publish packages the manifest plus sources into an archive and
// uploads it to the registry.
func (s Service) Publish(ctx context.Context, req PublishRequest) (PublishResult, error) {
	dir := req.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return PublishResult{}, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to determine working directory").
				WithCause(err)
		}
		dir = wd
	}

	manifest, err := s.Manifests.LoadDir(dir)
	if err != nil {
		return PublishResult{}, err
	}
	if err := core.ValidateManifest(ctx, manifest); err != nil {
		return PublishResult{}, err
	}
	if manifest.Package.Description == "" {
		return PublishResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("package description is required for publishing; add 'description' to Quantum.toml")
	}
	if manifest.Package.License == "" {
		return PublishResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("package license is required for publishing; add 'license' to Quantum.toml")
	}

	sources, err := s.Scaffold.SourceFiles(dir)
	if err != nil {
		return PublishResult{}, err
	}
	if len(sources) == 0 {
		return PublishResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("no source files found; cannot publish an empty package")
	}

	// Manifest at the archive root, then the sources.
	files := append([]string{adapters.ManifestFileName}, sources...)
	archive, err := s.Archive.Pack(dir, files)
	if err != nil {
		return PublishResult{}, err
	}

	registry, err := s.registry(req.RegistryURL)
	if err != nil {
		return PublishResult{}, err
	}
	err = registry.Publish(ctx, types.PublishSubmission{
		Name:        manifest.Package.Name,
		Version:     manifest.Package.Version,
		Description: manifest.Package.Description,
		License:     manifest.Package.License,
		Repository:  manifest.Package.Repository,
		Archive:     archive,
	})
	if err != nil {
		return PublishResult{}, err
	}

	registryURL := req.RegistryURL
	if registryURL == "" {
		registryURL = adapters.DefaultRegistryURL
	}
	log.Ctx(ctx).Debug().
		Str("package", manifest.Package.Name).
		Str("version", manifest.Package.Version).
		Msg("package published")
	return PublishResult{
		Name:     manifest.Package.Name,
		Version:  manifest.Package.Version,
		Registry: registryURL,
	}, nil
}
