package adapters

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"quantum/internal/ports"
	"quantum/internal/shared"
	"quantum/internal/types"
)

// ManifestFileName is the manifest file every quantum package carries
// at its root.
const ManifestFileName = "Quantum.toml"

const (
	defaultEdition     = "2024"
	defaultOptLevel    = 2
	defaultAddressSize = 64
)

// ManifestFileAdapter parses Quantum.toml files.
type ManifestFileAdapter struct{}

func NewManifestFileAdapter() ManifestFileAdapter {
	return ManifestFileAdapter{}
}

func (a ManifestFileAdapter) Load(path string) (types.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Manifest{}, shared.NotFoundErr("manifest not found: "+path, err)
	}
	var manifest types.Manifest
	md, err := toml.Decode(string(data), &manifest)
	if err != nil {
		return types.Manifest{}, shared.ParseErr("manifest "+path, err)
	}
	applyDefaults(&manifest, md)
	manifest.DependencyOrder = dependencyOrder(md)
	return manifest, nil
}

func (a ManifestFileAdapter) LoadDir(dir string) (types.Manifest, error) {
	return a.Load(filepath.Join(dir, ManifestFileName))
}

// applyDefaults fills fields the file left undefined, matching the
// defaults a scaffolded manifest carries.
func applyDefaults(manifest *types.Manifest, md toml.MetaData) {
	if !md.IsDefined("package", "edition") {
		manifest.Package.Edition = defaultEdition
	}
	if !md.IsDefined("build", "opt_level") {
		manifest.Build.OptLevel = defaultOptLevel
	}
	if !md.IsDefined("build", "address_size") {
		manifest.Build.AddressSize = defaultAddressSize
	}
	if manifest.Dependencies == nil {
		manifest.Dependencies = map[string]types.Dependency{}
	}
	if manifest.DevDependencies == nil {
		manifest.DevDependencies = map[string]types.Dependency{}
	}
}

// dependencyOrder recovers the declaration order of the production
// dependency keys from the decoder metadata.
func dependencyOrder(md toml.MetaData) []string {
	var order []string
	seen := map[string]bool{}
	for _, key := range md.Keys() {
		if len(key) < 2 || key[0] != "dependencies" {
			continue
		}
		name := key[1]
		if seen[name] {
			continue
		}
		seen[name] = true
		order = append(order, name)
	}
	return order
}

var _ ports.ManifestPort = ManifestFileAdapter{}
