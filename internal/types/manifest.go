package types

import (
	"fmt"
	"sort"
)

// Manifest is a parsed Quantum.toml file.
type Manifest struct {
	Package PackageMetadata `toml:"package"`

	// Dependencies are the production dependencies. Only these seed
	// dependency resolution; DevDependencies never enter the traversal.
	Dependencies    map[string]Dependency `toml:"dependencies"`
	DevDependencies map[string]Dependency `toml:"dev-dependencies"`

	Build BuildConfig `toml:"build"`

	// DependencyOrder records the declaration order of the production
	// dependency keys as they appeared in the manifest file. The
	// resolver seeds its worklist in this order so that first-wins
	// deduplication is deterministic.
	DependencyOrder []string `toml:"-"`
}

// PackageMetadata is the [package] section of a manifest.
type PackageMetadata struct {
	Name        string   `toml:"name"`
	Version     string   `toml:"version"`
	Authors     []string `toml:"authors,omitempty"`
	Description string   `toml:"description,omitempty"`
	License     string   `toml:"license,omitempty"`
	Repository  string   `toml:"repository,omitempty"`
	Homepage    string   `toml:"homepage,omitempty"`
	Edition     string   `toml:"edition"`
}

// BuildConfig is the [build] section of a manifest.
type BuildConfig struct {
	OptLevel    int  `toml:"opt_level"`
	Debug       bool `toml:"debug"`
	AddressSize int  `toml:"address_size"`
}

// Dependency is one dependency declaration. In the manifest it is
// either a bare version requirement string or a table with any of the
// fields below; a bare string populates only Version.
//
// Exactly one resolution variant applies, selected by precedence:
// Path set -> path dependency, else Git set -> git dependency, else
// Version set -> registry dependency. A declaration with none of the
// three is invalid.
type Dependency struct {
	Version  string
	Git      string
	Branch   string
	Tag      string
	Rev      string
	Path     string
	Registry string
}

// UnmarshalTOML accepts both declaration shapes.
func (d *Dependency) UnmarshalTOML(value interface{}) error {
	switch v := value.(type) {
	case string:
		d.Version = v
		return nil
	case map[string]interface{}:
		fields := map[string]*string{
			"version":  &d.Version,
			"git":      &d.Git,
			"branch":   &d.Branch,
			"tag":      &d.Tag,
			"rev":      &d.Rev,
			"path":     &d.Path,
			"registry": &d.Registry,
		}
		for key, raw := range v {
			dst, ok := fields[key]
			if !ok {
				return fmt.Errorf("unknown dependency field %q", key)
			}
			text, ok := raw.(string)
			if !ok {
				return fmt.Errorf("dependency field %q must be a string", key)
			}
			*dst = text
		}
		return nil
	default:
		return fmt.Errorf("dependency must be a version string or a table, got %T", value)
	}
}

// Kind selects the resolution variant per the precedence rule. The
// second return value is false when no variant applies.
func (d Dependency) Kind() (SourceKind, bool) {
	switch {
	case d.Path != "":
		return SourceKindPath, true
	case d.Git != "":
		return SourceKindGit, true
	case d.Version != "":
		return SourceKindRegistry, true
	default:
		return "", false
	}
}

// OrderedDependencies returns the production dependency names in
// declaration order. Names missing from DependencyOrder (manifests
// built in code rather than parsed from a file) are appended in sorted
// order so traversal stays deterministic.
func (m Manifest) OrderedDependencies() []string {
	seen := make(map[string]bool, len(m.Dependencies))
	names := make([]string, 0, len(m.Dependencies))
	for _, name := range m.DependencyOrder {
		if _, ok := m.Dependencies[name]; !ok || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	var rest []string
	for name := range m.Dependencies {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}
