package validation_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/teamhealth/teamhealth/internal/api/validation"
)

func TestValidateCreateAssessmentRequest_Valid(t *testing.T) {
	errs := validation.ValidateCreateAssessmentRequest(validation.CreateAssessmentRequest{
		TeamID:          uuid.New().String(),
		ParticipantName: "alice",
	})
	assert.Empty(t, errs)
}

func TestValidateCreateAssessmentRequest_MissingTeamID(t *testing.T) {
	errs := validation.ValidateCreateAssessmentRequest(validation.CreateAssessmentRequest{
		ParticipantName: "alice",
	})

	if assert.Len(t, errs, 1) {
		assert.Equal(t, "teamId", errs[0].Field)
	}
}

func TestValidateCreateAssessmentRequest_InvalidTeamID(t *testing.T) {
	errs := validation.ValidateCreateAssessmentRequest(validation.CreateAssessmentRequest{
		TeamID:          "not-a-uuid",
		ParticipantName: "alice",
	})

	if assert.Len(t, errs, 1) {
		assert.Equal(t, "teamId", errs[0].Field)
	}
}

func TestValidateCreateAssessmentRequest_MissingParticipant(t *testing.T) {
	errs := validation.ValidateCreateAssessmentRequest(validation.CreateAssessmentRequest{
		TeamID: uuid.New().String(),
	})

	if assert.Len(t, errs, 1) {
		assert.Equal(t, "participantName", errs[0].Field)
	}
}

func TestValidateCreateAssessmentRequest_AllMissing(t *testing.T) {
	errs := validation.ValidateCreateAssessmentRequest(validation.CreateAssessmentRequest{})

	assert.Len(t, errs, 2)
}
