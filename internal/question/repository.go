package question

import "context"

// Repository provides read and seed operations on the questions table.
type Repository interface {
	// List returns catalog questions. Unfiltered, they are ordered by
	// category then order_index; filtered to one category, by order_index.
	List(ctx context.Context, category *string) ([]Question, error)
	Count(ctx context.Context) (int, error)
	// SeedIfEmpty inserts the static catalog unless any question row
	// already exists. Idempotent.
	SeedIfEmpty(ctx context.Context) error
}
