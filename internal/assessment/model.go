package assessment

import (
	"time"

	"github.com/google/uuid"
)

// Assessment represents one participant's submission event for one team.
type Assessment struct {
	ID              uuid.UUID
	TeamID          uuid.UUID
	ParticipantName string
	CreatedAt       time.Time
	Responses       []Response
}

// Response represents one scored answer within an assessment.
// Score is documented as 1-5 but any integer is accepted at write time;
// QuestionID is not checked against the catalog.
type Response struct {
	ID           uuid.UUID
	AssessmentID uuid.UUID
	QuestionID   uuid.UUID
	Score        int
	Notes        *string
}

// NewResponse is one submitted answer before it is bound to an assessment.
type NewResponse struct {
	QuestionID uuid.UUID
	Score      int
	Notes      *string
}
