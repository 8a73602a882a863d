package validation

import (
	"strings"

	"github.com/google/uuid"
)

// CreateAssessmentRequest mirrors the fields needed for create assessment validation.
type CreateAssessmentRequest struct {
	TeamID          string
	ParticipantName string
}

// ValidateCreateAssessmentRequest validates the fields of a create assessment request.
func ValidateCreateAssessmentRequest(req CreateAssessmentRequest) []FieldError {
	var errs []FieldError

	if req.TeamID == "" {
		errs = append(errs, FieldError{Field: "teamId", Message: "teamId is required"})
	} else if _, err := uuid.Parse(req.TeamID); err != nil {
		errs = append(errs, FieldError{Field: "teamId", Message: "teamId must be a valid UUID"})
	}

	if strings.TrimSpace(req.ParticipantName) == "" {
		errs = append(errs, FieldError{Field: "participantName", Message: "participantName is required"})
	}

	return errs
}
