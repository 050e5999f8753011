package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"quantum/internal/ports"
)

// CacheStoreAdapter maps source identities onto directories under a
// single cache root. Directories persist across runs and are never
// pruned or refreshed; a populated identity is trusted unconditionally.
type CacheStoreAdapter struct {
	Root string
}

// NewCacheStoreAdapter uses root as the cache root. The root is
// injected rather than read from the environment so callers (and
// tests) control isolation.
func NewCacheStoreAdapter(root string) CacheStoreAdapter {
	return CacheStoreAdapter{Root: root}
}

// DefaultCacheRoot is the cache location used when no explicit root is
// configured: ~/.quantum/cache.
func DefaultCacheRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("failed to determine home directory").
			WithCause(err)
	}
	return filepath.Join(home, ".quantum", "cache"), nil
}

func (a CacheStoreAdapter) Has(identity string) bool {
	_, err := os.Stat(a.PathFor(identity))
	return err == nil
}

func (a CacheStoreAdapter) PathFor(identity string) string {
	return filepath.Join(a.Root, identity)
}

func (a CacheStoreAdapter) Create(identity string) (string, error) {
	dir := a.PathFor(identity)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create cache directory").
			WithCause(err)
	}
	return dir, nil
}

// Populate fills an identity atomically: fill writes into a temporary
// directory under the root, which is renamed into place afterwards.
// When two processes race on the same identity, the rename loser keeps
// the winner's directory and discards its own work.
func (a CacheStoreAdapter) Populate(identity string, fill func(dir string) error) (string, error) {
	final := a.PathFor(identity)
	if _, err := os.Stat(final); err == nil {
		return final, nil
	}
	if err := os.MkdirAll(a.Root, 0o755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create cache root").
			WithCause(err)
	}
	tmp, err := os.MkdirTemp(a.Root, "."+identity+".tmp-")
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create cache staging directory").
			WithCause(err)
	}
	if err := fill(tmp); err != nil {
		_ = os.RemoveAll(tmp)
		return "", err
	}
	if err := os.Rename(tmp, final); err != nil {
		_ = os.RemoveAll(tmp)
		if _, statErr := os.Stat(final); statErr == nil {
			// Lost the race; the winner's content is already in place.
			return final, nil
		}
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to commit cache directory").
			WithCause(err)
	}
	return final, nil
}

var _ ports.CacheStorePort = CacheStoreAdapter{}
