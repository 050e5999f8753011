package ports

import "quantum/internal/types"

// ManifestPort loads Quantum.toml manifests.
type ManifestPort interface {
	// Load parses the manifest at path.
	Load(path string) (types.Manifest, error)

	// LoadDir parses the manifest found at the root of a package
	// directory.
	LoadDir(dir string) (types.Manifest, error)
}
