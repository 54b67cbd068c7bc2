package search

import (
	"context"

	"github.com/zonetick/zonetick/pkg/catalog"
	"github.com/zonetick/zonetick/pkg/printers"
)

// Search queries the static catalog.
type Search struct {
	Query string
}

func (s *Search) Do(ctx context.Context) error {
	_ = ctx

	pp := printers.PrettyPrint{}
	pp.SearchResults(catalog.Search(s.Query))
	return nil
}
