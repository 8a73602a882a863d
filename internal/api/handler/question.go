package handler

import (
	"log/slog"
	"net/http"

	"github.com/teamhealth/teamhealth/internal/api/middleware"
	"github.com/teamhealth/teamhealth/internal/api/response"
	"github.com/teamhealth/teamhealth/internal/question"
)

type questionResponse struct {
	ID         string `json:"id"`
	Category   string `json:"category"`
	Text       string `json:"text"`
	OrderIndex int    `json:"orderIndex"`
}

func toQuestionResponse(q *question.Question) questionResponse {
	return questionResponse{
		ID:         q.ID.String(),
		Category:   q.Category,
		Text:       q.Text,
		OrderIndex: q.OrderIndex,
	}
}

// QuestionHandler handles the survey catalog endpoints.
type QuestionHandler struct {
	repo question.Repository
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(repo question.Repository) *QuestionHandler {
	return &QuestionHandler{repo: repo}
}

// List handles GET /questions with an optional category query parameter.
// An unknown category yields an empty list rather than an error.
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var category *string
	if c := r.URL.Query().Get("category"); c != "" {
		category = &c
	}

	questions, err := h.repo.List(r.Context(), category)
	if err != nil {
		slog.Error("failed to list questions", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list questions", requestID)
		return
	}

	items := make([]questionResponse, 0, len(questions))
	for i := range questions {
		items = append(items, toQuestionResponse(&questions[i]))
	}

	response.SuccessList(w, http.StatusOK, items, len(items), 1, 100, requestID)
}
