package core

import (
	"bytes"

	"github.com/BurntSushi/toml"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"quantum/internal/shared"
	"quantum/internal/types"
)

// LockfileCodec converts between ResultSets, Lockfile values, and the
// Quantum.lock text format.
type LockfileCodec struct{}

func NewLockfileCodec() LockfileCodec {
	return LockfileCodec{}
}

// FromResultSet builds a fresh lockfile snapshot: one entry per
// resolved record, keyed by declared name. SourceURL and Checksum stay
// unset; no fetch variant populates them.
func (LockfileCodec) FromResultSet(set *ResultSet) types.Lockfile {
	lockfile := types.Lockfile{
		Version:      types.LockfileSchemaVersion,
		Dependencies: map[string]types.LockedDependency{},
	}
	for name, record := range set.All() {
		lockfile.Dependencies[name] = types.LockedDependency{
			Name:    record.Name,
			Version: record.Version,
			Source:  string(record.Source),
		}
	}
	return lockfile
}

// Serialize renders a lockfile as TOML text.
func (LockfileCodec) Serialize(lockfile types.Lockfile) (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(lockfile); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to serialize lockfile").
			WithCause(err)
	}
	return buf.String(), nil
}

// Deserialize parses lockfile TOML text. Round-trip invariant: for
// every populated field, Deserialize(Serialize(l)) equals l.
func (LockfileCodec) Deserialize(text string) (types.Lockfile, error) {
	var lockfile types.Lockfile
	if err := toml.Unmarshal([]byte(text), &lockfile); err != nil {
		return types.Lockfile{}, shared.ParseErr("lockfile", err)
	}
	if lockfile.Dependencies == nil {
		lockfile.Dependencies = map[string]types.LockedDependency{}
	}
	return lockfile, nil
}
