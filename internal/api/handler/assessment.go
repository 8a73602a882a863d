package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/teamhealth/teamhealth/internal/api/middleware"
	"github.com/teamhealth/teamhealth/internal/api/response"
	"github.com/teamhealth/teamhealth/internal/api/validation"
	"github.com/teamhealth/teamhealth/internal/assessment"
)

type createAssessmentRequest struct {
	TeamID          string `json:"teamId"`
	ParticipantName string `json:"participantName"`
}

type submitResponseItem struct {
	QuestionID string  `json:"questionId"`
	Score      int     `json:"score"`
	Notes      *string `json:"notes"`
}

type submitResponsesRequest struct {
	Items []submitResponseItem `json:"items"`
}

type responseItem struct {
	ID         string  `json:"id"`
	QuestionID string  `json:"questionId"`
	Score      int     `json:"score"`
	Notes      *string `json:"notes"`
}

type assessmentResponse struct {
	ID              string         `json:"id"`
	TeamID          string         `json:"teamId"`
	ParticipantName string         `json:"participantName"`
	CreatedAt       string         `json:"createdAt"`
	Responses       []responseItem `json:"responses"`
}

func toResponseItem(r *assessment.Response) responseItem {
	return responseItem{
		ID:         r.ID.String(),
		QuestionID: r.QuestionID.String(),
		Score:      r.Score,
		Notes:      r.Notes,
	}
}

func toAssessmentResponse(a *assessment.Assessment) assessmentResponse {
	items := make([]responseItem, 0, len(a.Responses))
	for i := range a.Responses {
		items = append(items, toResponseItem(&a.Responses[i]))
	}
	return assessmentResponse{
		ID:              a.ID.String(),
		TeamID:          a.TeamID.String(),
		ParticipantName: a.ParticipantName,
		CreatedAt:       a.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		Responses:       items,
	}
}

// AssessmentHandler handles assessment and response submission endpoints.
type AssessmentHandler struct {
	repo assessment.Repository
}

// NewAssessmentHandler creates a new AssessmentHandler.
func NewAssessmentHandler(repo assessment.Repository) *AssessmentHandler {
	return &AssessmentHandler{repo: repo}
}

// Create handles POST /assessments.
func (h *AssessmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req createAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	fieldErrors := validation.ValidateCreateAssessmentRequest(validation.CreateAssessmentRequest{
		TeamID:          req.TeamID,
		ParticipantName: req.ParticipantName,
	})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	teamID, _ := uuid.Parse(req.TeamID)
	a := &assessment.Assessment{
		TeamID:          teamID,
		ParticipantName: req.ParticipantName,
	}

	if err := h.repo.Create(r.Context(), a); err != nil {
		if errors.Is(err, assessment.ErrTeamNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Team not found", requestID)
			return
		}
		slog.Error("failed to create assessment", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create assessment", requestID)
		return
	}

	response.Success(w, http.StatusCreated, toAssessmentResponse(a), requestID)
}

// ListByTeam handles GET /teams/{id}/assessments.
func (h *AssessmentHandler) ListByTeam(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	idStr := chi.URLParam(r, "id")
	teamID, err := uuid.Parse(idStr)
	if err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_ID", "id must be a valid UUID", requestID)
		return
	}

	assessments, err := h.repo.ListByTeam(r.Context(), teamID)
	if err != nil {
		slog.Error("failed to list assessments", "error", err, "teamId", teamID)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list assessments", requestID)
		return
	}

	items := make([]assessmentResponse, 0, len(assessments))
	for i := range assessments {
		items = append(items, toAssessmentResponse(&assessments[i]))
	}

	response.SuccessList(w, http.StatusOK, items, len(items), 1, 100, requestID)
}

// SubmitResponses handles POST /assessments/{id}/responses.
func (h *AssessmentHandler) SubmitResponses(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	idStr := chi.URLParam(r, "id")
	assessmentID, err := uuid.Parse(idStr)
	if err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_ID", "id must be a valid UUID", requestID)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req submitResponsesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	validationItems := make([]validation.SubmitResponseItem, 0, len(req.Items))
	for _, item := range req.Items {
		validationItems = append(validationItems, validation.SubmitResponseItem{
			QuestionID: item.QuestionID,
		})
	}
	if fieldErrors := validation.ValidateSubmitResponsesRequest(validationItems); len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	items := make([]assessment.NewResponse, 0, len(req.Items))
	for _, item := range req.Items {
		questionID, _ := uuid.Parse(item.QuestionID)
		items = append(items, assessment.NewResponse{
			QuestionID: questionID,
			Score:      item.Score,
			Notes:      item.Notes,
		})
	}

	created, err := h.repo.CreateResponses(r.Context(), assessmentID, items)
	if err != nil {
		if errors.Is(err, assessment.ErrAssessmentNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Assessment not found", requestID)
			return
		}
		slog.Error("failed to submit responses", "error", err, "assessmentId", assessmentID)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to submit responses", requestID)
		return
	}

	response.Success(w, http.StatusCreated, map[string]int{"createdCount": created}, requestID)
}

// ListResponses handles GET /assessments/{id}/responses.
func (h *AssessmentHandler) ListResponses(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	idStr := chi.URLParam(r, "id")
	assessmentID, err := uuid.Parse(idStr)
	if err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_ID", "id must be a valid UUID", requestID)
		return
	}

	responses, err := h.repo.ListResponses(r.Context(), assessmentID)
	if err != nil {
		slog.Error("failed to list responses", "error", err, "assessmentId", assessmentID)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list responses", requestID)
		return
	}

	items := make([]responseItem, 0, len(responses))
	for i := range responses {
		items = append(items, toResponseItem(&responses[i]))
	}

	response.SuccessList(w, http.StatusOK, items, len(items), 1, 100, requestID)
}
