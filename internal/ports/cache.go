package ports

// CacheStorePort maps a source identity to a stable on-disk directory.
// Identities present in the cache are trusted unconditionally; there is
// no TTL, staleness check, or content verification.
type CacheStorePort interface {
	// Has reports whether an identity is populated.
	Has(identity string) bool

	// PathFor returns the directory an identity maps to, whether or
	// not it exists yet.
	PathFor(identity string) string

	// Create makes the identity directory (and parents), idempotently,
	// and returns its path.
	Create(identity string) (string, error)

	// Populate fills the identity directory atomically: fill writes
	// into a temporary directory under the cache root, which is then
	// renamed into place. When two callers race, the loser discards
	// its temporary directory and the winner's content is kept.
	Populate(identity string, fill func(dir string) error) (string, error)
}
