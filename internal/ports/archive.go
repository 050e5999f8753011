package ports

// ArchivePort packs and extracts directory-tree archives. The archive
// carries the package manifest at its root plus the package sources.
type ArchivePort interface {
	// Extract unpacks archive bytes into dest.
	Extract(data []byte, dest string) error

	// Pack archives the given root-relative files from root.
	Pack(root string, files []string) ([]byte, error)
}
