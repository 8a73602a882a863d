package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/teamhealth/teamhealth/internal/api/middleware"
	"github.com/teamhealth/teamhealth/internal/api/response"
	"github.com/teamhealth/teamhealth/internal/results"
)

type teamResultsResponse struct {
	TeamID                 string  `json:"teamId"`
	TeamName               string  `json:"teamName"`
	AssessmentCount        int     `json:"assessmentCount"`
	PsychologicalSafetyAvg float64 `json:"psychologicalSafetyAvg"`
	DependabilityAvg       float64 `json:"dependabilityAvg"`
	StructureClarityAvg    float64 `json:"structureClarityAvg"`
	MeaningImpactAvg       float64 `json:"meaningImpactAvg"`
}

func toTeamResultsResponse(tr *results.TeamResults) teamResultsResponse {
	return teamResultsResponse{
		TeamID:                 tr.TeamID.String(),
		TeamName:               tr.TeamName,
		AssessmentCount:        tr.AssessmentCount,
		PsychologicalSafetyAvg: tr.PsychologicalSafetyAvg,
		DependabilityAvg:       tr.DependabilityAvg,
		StructureClarityAvg:    tr.StructureClarityAvg,
		MeaningImpactAvg:       tr.MeaningImpactAvg,
	}
}

// ResultsHandler handles the team results endpoint.
type ResultsHandler struct {
	repo results.Repository
}

// NewResultsHandler creates a new ResultsHandler.
func NewResultsHandler(repo results.Repository) *ResultsHandler {
	return &ResultsHandler{repo: repo}
}

// GetTeamResults handles GET /teams/{id}/results.
func (h *ResultsHandler) GetTeamResults(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	idStr := chi.URLParam(r, "id")
	teamID, err := uuid.Parse(idStr)
	if err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_ID", "id must be a valid UUID", requestID)
		return
	}

	res, err := h.repo.ComputeTeamResults(r.Context(), teamID)
	if err != nil {
		if errors.Is(err, results.ErrTeamNotFound) {
			response.Err(w, http.StatusNotFound, "NOT_FOUND", "Team not found", requestID)
			return
		}
		slog.Error("failed to compute team results", "error", err, "teamId", teamID)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute team results", requestID)
		return
	}

	response.Success(w, http.StatusOK, toTeamResultsResponse(res), requestID)
}
