package app

import "quantum/internal/types"

type ResolveRequest struct {
	// ManifestPath is the Quantum.toml to resolve. Defaults to
	// ./Quantum.toml.
	ManifestPath string
	// LockfilePath is where the lockfile snapshot is written.
	// Defaults to Quantum.lock beside the manifest.
	LockfilePath string
	// CacheDir overrides the cache root. Defaults to ~/.quantum/cache.
	CacheDir string
	// RegistryURL overrides the registry. Defaults to the official
	// registry.
	RegistryURL string
}

type ResolveResult struct {
	PackageName  string
	Dependencies int
	LockfilePath string
}

type NewRequest struct {
	Name string
	// Here scaffolds into the current directory instead of creating a
	// new one named after the package.
	Here bool
	// Dir is the base directory; defaults to the working directory.
	Dir string
}

type NewResult struct {
	Root string
}

type PublishRequest struct {
	// Dir is the package directory. Defaults to the working directory.
	Dir         string
	RegistryURL string
}

type PublishResult struct {
	Name     string
	Version  string
	Registry string
}

type SearchRequest struct {
	Query       string
	RegistryURL string
}

type SearchResult struct {
	Packages []types.PackageInfo
}
