package partnerboost

import (
	"context"

	"github.com/pb-tools/partner-atlas/pkg/models/api"
)

// pageFunc fetches one page by 1-based index.
type pageFunc[T any] func(ctx context.Context, page int) (*api.Page[T], error)

// collectHasMore concatenates pages until the continuation flag is false or
// absent. Item order is preserved within and across pages.
func collectHasMore[T any](ctx context.Context, fetch pageFunc[T]) ([]T, error) {
	var all []T
	for page := 1; ; page++ {
		p, err := fetch(ctx, page)
		if err != nil {
			return nil, err
		}
		all = append(all, p.List...)
		if !p.More() {
			return all, nil
		}
	}
}

// collectTotalPage concatenates pages until the declared page count is
// reached, stopping early on an empty page.
func collectTotalPage[T any](ctx context.Context, fetch pageFunc[T]) ([]T, error) {
	var all []T
	for page := 1; ; page++ {
		p, err := fetch(ctx, page)
		if err != nil {
			return nil, err
		}
		if len(p.List) == 0 {
			return all, nil
		}
		all = append(all, p.List...)
		if page >= p.TotalPages() {
			return all, nil
		}
	}
}
