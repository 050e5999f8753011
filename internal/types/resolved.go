package types

// ResolvedDependency is one concrete, located, loaded dependency.
//
// Name comes from the dependency's own loaded manifest, which may
// differ from the key it was declared under. Dir is owned by the cache
// for registry and git dependencies; for path dependencies it aliases
// the declared path and is never copied or deleted.
type ResolvedDependency struct {
	Name     string
	Version  string
	Dir      string
	Manifest Manifest
	Source   SourceKind
}

// PackageInfo is registry metadata about a published package.
type PackageInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
	Downloads   uint64 `json:"downloads"`
}

// PublishSubmission is the payload for publishing a package archive to
// the registry.
type PublishSubmission struct {
	Name        string
	Version     string
	Description string
	License     string
	Repository  string
	Archive     []byte
}

// Credentials holds registry authentication loaded from the user's
// credentials file. Registries maps a registry base URL to a token
// that overrides the default.
type Credentials struct {
	Token      string            `yaml:"token,omitempty"`
	Registries map[string]string `yaml:"registries,omitempty"`
}

// TokenFor returns the token for a registry URL, falling back to the
// default token. The second return value is false when no token is
// configured at all.
func (c Credentials) TokenFor(registryURL string) (string, bool) {
	if token, ok := c.Registries[registryURL]; ok && token != "" {
		return token, true
	}
	if c.Token != "" {
		return c.Token, true
	}
	return "", false
}
