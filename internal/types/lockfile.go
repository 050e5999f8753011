package types

// LockfileSchemaVersion is the current Quantum.lock format version.
const LockfileSchemaVersion = 1

// Lockfile is a full snapshot of one resolution pass. It is always
// regenerated wholesale from a fresh ResultSet, never merged with a
// prior lockfile.
type Lockfile struct {
	Version      int                         `toml:"version"`
	Dependencies map[string]LockedDependency `toml:"dependencies"`
}

// LockedDependency is the persisted record of one resolved dependency.
// SourceURL and Checksum are reserved; no fetch variant populates them
// yet.
type LockedDependency struct {
	Name      string `toml:"name"`
	Version   string `toml:"version"`
	Source    string `toml:"source"`
	SourceURL string `toml:"source_url,omitempty"`
	Checksum  string `toml:"checksum,omitempty"`
}
