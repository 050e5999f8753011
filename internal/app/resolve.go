package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"quantum/internal/adapters"
	"quantum/internal/core"
)

// Resolve loads a manifest, resolves its full transitive dependency
// set, and writes a fresh lockfile snapshot beside the manifest.
func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	manifestPath := strings.TrimSpace(req.ManifestPath)
	if manifestPath == "" {
		manifestPath = adapters.ManifestFileName
	}
	lockfilePath := strings.TrimSpace(req.LockfilePath)
	if lockfilePath == "" {
		lockfilePath = filepath.Join(filepath.Dir(manifestPath), adapters.LockfileName)
	}
	cacheDir := strings.TrimSpace(req.CacheDir)
	if cacheDir == "" {
		root, err := adapters.DefaultCacheRoot()
		if err != nil {
			return ResolveResult{}, err
		}
		cacheDir = root
	}

	manifest, err := s.Manifests.Load(manifestPath)
	if err != nil {
		return ResolveResult{}, err
	}
	if err := core.ValidateManifest(ctx, manifest); err != nil {
		return ResolveResult{}, err
	}

	registry, err := s.registry(req.RegistryURL)
	if err != nil {
		return ResolveResult{}, err
	}
	cache := adapters.NewCacheStoreAdapter(cacheDir)
	fetcher := core.NewFetcherCore(registry, s.VCS, cache, s.Manifests, s.Archive)
	resolver := core.NewResolverCore(fetcher)

	resolved, err := resolver.Resolve(ctx, manifest)
	if err != nil {
		return ResolveResult{}, err
	}

	codec := core.NewLockfileCodec()
	if err := s.Lockfiles.Write(lockfilePath, codec.FromResultSet(resolved)); err != nil {
		return ResolveResult{}, err
	}

	log.Ctx(ctx).Debug().
		Str("package", manifest.Package.Name).
		Int("dependencies", resolved.Len()).
		Msg("lockfile written")
	return ResolveResult{
		PackageName:  manifest.Package.Name,
		Dependencies: resolved.Len(),
		LockfilePath: lockfilePath,
	}, nil
}
