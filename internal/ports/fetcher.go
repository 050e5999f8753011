package ports

import (
	"context"

	"quantum/internal/types"
)

// SourceFetcherPort turns one dependency declaration into a resolved
// record.
type SourceFetcherPort interface {
	FetchOne(ctx context.Context, name string, dep types.Dependency) (types.ResolvedDependency, error)
}
