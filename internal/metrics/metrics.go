package metrics

import "context"

// Collector reads the catalog figures reported as gauges.
type Collector interface {
	CountBooks(ctx context.Context) (int64, error)
	CountActiveBooks(ctx context.Context) (int64, error)
	CountCategories(ctx context.Context) (int64, error)
}
