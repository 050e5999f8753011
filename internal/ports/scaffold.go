package ports

// ScaffoldPort creates new package skeletons and discovers package
// source files.
type ScaffoldPort interface {
	// Create lays out a new package named name at dir: manifest,
	// src/main.qm, .gitignore, and README.md.
	Create(name string, dir string) error

	// SourceFiles returns the package's .qm source files under
	// root/src, as root-relative paths.
	SourceFiles(root string) ([]string, error)
}
