package types

// SourceKind is the origin category of a resolved dependency.
type SourceKind string

const (
	SourceKindRegistry SourceKind = "registry"
	SourceKindPath     SourceKind = "path"
	SourceKindGit      SourceKind = "git"
)
