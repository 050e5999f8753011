package core

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"quantum/internal/ports"
	"quantum/internal/shared"
	"quantum/internal/types"
)

// DefaultDepthBound is the maximum traversal depth. Exceeding it is the
// sole cycle-detection mechanism: a genuine cycle among path or
// registry dependencies would otherwise traverse forever.
const DefaultDepthBound = 100

// ResolverCore walks the transitive dependency graph breadth-first and
// collects one resolved record per dependency name.
type ResolverCore struct {
	Fetcher    ports.SourceFetcherPort
	DepthBound int
}

type workItem struct {
	name  string
	dep   types.Dependency
	depth int
}

func NewResolverCore(fetcher ports.SourceFetcherPort) ResolverCore {
	return ResolverCore{
		Fetcher:    fetcher,
		DepthBound: DefaultDepthBound,
	}
}

// Resolve traverses the graph seeded by the manifest's production
// dependencies in declaration order. The first resolution of a name
// wins; later declarations of the same name are dropped without
// conflict detection. Any failure aborts the whole call; no partial
// result is returned.
func (r ResolverCore) Resolve(ctx context.Context, manifest types.Manifest) (*ResultSet, error) {
	if r.Fetcher == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("resolver requires a source fetcher port")
	}

	resolved := NewResultSet()
	var worklist []workItem
	for _, name := range manifest.OrderedDependencies() {
		worklist = append(worklist, workItem{name: name, dep: manifest.Dependencies[name], depth: 0})
	}

	for len(worklist) > 0 {
		item := worklist[0]
		worklist = worklist[1:]

		if item.depth > r.depthBound() {
			return nil, shared.DepthErr(item.name, item.depth)
		}
		if resolved.Contains(item.name) {
			continue
		}

		record, err := r.Fetcher.FetchOne(ctx, item.name, item.dep)
		if err != nil {
			return nil, err
		}

		for _, transName := range record.Manifest.OrderedDependencies() {
			worklist = append(worklist, workItem{
				name:  transName,
				dep:   record.Manifest.Dependencies[transName],
				depth: item.depth + 1,
			})
		}

		resolved.Add(item.name, record)
	}

	log.Ctx(ctx).Debug().Int("resolved", resolved.Len()).Msg("dependency resolution completed")
	return resolved, nil
}

func (r ResolverCore) depthBound() int {
	if r.DepthBound > 0 {
		return r.DepthBound
	}
	return DefaultDepthBound
}
