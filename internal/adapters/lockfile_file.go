package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"quantum/internal/core"
	"quantum/internal/ports"
	"quantum/internal/shared"
	"quantum/internal/types"
)

// LockfileName is the lockfile written beside the package manifest.
const LockfileName = "Quantum.lock"

// LockfileFileAdapter persists Quantum.lock files through the core
// codec.
type LockfileFileAdapter struct {
	codec core.LockfileCodec
}

func NewLockfileFileAdapter() LockfileFileAdapter {
	return LockfileFileAdapter{codec: core.NewLockfileCodec()}
}

func (a LockfileFileAdapter) Read(path string) (types.Lockfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Lockfile{}, shared.NotFoundErr("lockfile not found: "+path, err)
	}
	return a.codec.Deserialize(string(data))
}

func (a LockfileFileAdapter) Write(path string, lockfile types.Lockfile) error {
	text, err := a.codec.Serialize(lockfile)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create lockfile directory").
			WithCause(err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write lockfile").
			WithCause(err)
	}
	return nil
}

var _ ports.LockfileStorePort = LockfileFileAdapter{}
