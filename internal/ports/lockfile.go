package ports

import "quantum/internal/types"

// LockfileStorePort reads and writes Quantum.lock files. Writes are
// always full snapshots; a lockfile is never patched incrementally.
type LockfileStorePort interface {
	Read(path string) (types.Lockfile, error)
	Write(path string, lockfile types.Lockfile) error
}
