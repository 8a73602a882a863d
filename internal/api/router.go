package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/teamhealth/teamhealth/internal/api/handler"
	"github.com/teamhealth/teamhealth/internal/api/middleware"
	"github.com/teamhealth/teamhealth/internal/assessment"
	"github.com/teamhealth/teamhealth/internal/question"
	"github.com/teamhealth/teamhealth/internal/results"
	"github.com/teamhealth/teamhealth/internal/team"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	DBPinger          handler.DBPinger
	Version           string
	CORSAllowedOrigin string
	TeamRepo          team.Repository
	QuestionRepo      question.Repository
	AssessmentRepo    assessment.Repository
	ResultsRepo       results.Repository
	OpenAPISpec       []byte
}

// NewRouter creates and configures a Chi router with all middleware and routes.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)
	if deps.CORSAllowedOrigin != "" {
		r.Use(middleware.CORS(deps.CORSAllowedOrigin))
	}

	healthHandler := handler.NewHealthHandler(deps.DBPinger, deps.Version)
	r.Get("/health", healthHandler.ServeHTTP)

	if len(deps.OpenAPISpec) > 0 {
		openapiHandler := handler.NewOpenAPIHandler(deps.OpenAPISpec)
		r.Get("/openapi.json", openapiHandler.ServeHTTP)
	}

	if deps.TeamRepo != nil {
		teamHandler := handler.NewTeamHandler(deps.TeamRepo)
		r.Route("/teams", func(r chi.Router) {
			r.Post("/", teamHandler.Create)
			r.Get("/", teamHandler.List)
			r.Get("/{id}", teamHandler.GetByID)

			if deps.AssessmentRepo != nil {
				assessmentHandler := handler.NewAssessmentHandler(deps.AssessmentRepo)
				r.Get("/{id}/assessments", assessmentHandler.ListByTeam)
			}
			if deps.ResultsRepo != nil {
				resultsHandler := handler.NewResultsHandler(deps.ResultsRepo)
				r.Get("/{id}/results", resultsHandler.GetTeamResults)
			}
		})
	}

	if deps.QuestionRepo != nil {
		questionHandler := handler.NewQuestionHandler(deps.QuestionRepo)
		r.Get("/questions", questionHandler.List)
	}

	if deps.AssessmentRepo != nil {
		assessmentHandler := handler.NewAssessmentHandler(deps.AssessmentRepo)
		r.Route("/assessments", func(r chi.Router) {
			r.Post("/", assessmentHandler.Create)
			r.Post("/{id}/responses", assessmentHandler.SubmitResponses)
			r.Get("/{id}/responses", assessmentHandler.ListResponses)
		})
	}

	return r
}
