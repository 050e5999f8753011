package ports

import (
	"context"

	"quantum/internal/types"
)

// RegistryPort is the package registry collaborator.
type RegistryPort interface {
	// Download fetches the archive bytes for a published package
	// version. A registry 404-equivalent surfaces as a not-found
	// error; other transport failures surface as fetch errors.
	Download(ctx context.Context, name string, version string) ([]byte, error)

	// Publish uploads a package archive.
	Publish(ctx context.Context, submission types.PublishSubmission) error

	// Search queries the registry for packages matching a term.
	Search(ctx context.Context, query string) ([]types.PackageInfo, error)
}
