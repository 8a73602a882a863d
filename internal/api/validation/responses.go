package validation

import (
	"fmt"

	"github.com/google/uuid"
)

// SubmitResponseItem mirrors one submitted response item for validation.
// Score is not range-checked: the collector accepts any integer.
type SubmitResponseItem struct {
	QuestionID string
}

// ValidateSubmitResponsesRequest validates the shape of a submit responses
// request. An empty batch is accepted and creates nothing.
func ValidateSubmitResponsesRequest(items []SubmitResponseItem) []FieldError {
	var errs []FieldError

	for i, item := range items {
		if item.QuestionID == "" {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("items[%d].questionId", i),
				Message: "questionId is required",
			})
		} else if _, err := uuid.Parse(item.QuestionID); err != nil {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("items[%d].questionId", i),
				Message: "questionId must be a valid UUID",
			})
		}
	}

	return errs
}
