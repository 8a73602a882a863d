package assessment

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrAssessmentNotFound is returned when an assessment record is not found.
var ErrAssessmentNotFound = errors.New("assessment not found")

// ErrTeamNotFound is returned when creating an assessment for a missing team.
var ErrTeamNotFound = errors.New("team not found")

// Repository provides operations on the assessments and responses tables.
type Repository interface {
	Create(ctx context.Context, a *Assessment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Assessment, error)
	// ListByTeam returns a team's assessments with their responses populated.
	ListByTeam(ctx context.Context, teamID uuid.UUID) ([]Assessment, error)
	// CreateResponses inserts all items in one transaction, bound to the
	// given assessment. All-or-nothing; returns the number created.
	CreateResponses(ctx context.Context, assessmentID uuid.UUID, items []NewResponse) (int, error)
	// ListResponses returns an assessment's responses in insertion order.
	ListResponses(ctx context.Context, assessmentID uuid.UUID) ([]Response, error)
}
