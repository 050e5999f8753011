package app

import (
	"context"
	"strings"

	"quantum/internal/shared"
)

// Search queries the registry for packages matching a term.
func (s Service) Search(ctx context.Context, req SearchRequest) (SearchResult, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return SearchResult{}, shared.InvalidErr("search query is required")
	}
	registry, err := s.registry(req.RegistryURL)
	if err != nil {
		return SearchResult{}, err
	}
	packages, err := registry.Search(ctx, query)
	if err != nil {
		return SearchResult{}, err
	}
	return SearchResult{Packages: packages}, nil
}
