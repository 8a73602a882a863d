package results

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrTeamNotFound is returned when the requested team does not exist.
var ErrTeamNotFound = errors.New("team not found")

// Repository computes aggregated survey results.
type Repository interface {
	// ComputeTeamResults recomputes the per-category averages for a team
	// from current data. Never cached.
	ComputeTeamResults(ctx context.Context, teamID uuid.UUID) (*TeamResults, error)
}
