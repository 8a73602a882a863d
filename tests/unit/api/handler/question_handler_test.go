package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/teamhealth/teamhealth/internal/api/handler"
	"github.com/teamhealth/teamhealth/internal/question"
)

// --- Mock Question Repository ---

type mockQuestionRepo struct {
	listFn func(ctx context.Context, category *string) ([]question.Question, error)
}

func (m *mockQuestionRepo) List(ctx context.Context, category *string) ([]question.Question, error) {
	if m.listFn != nil {
		return m.listFn(ctx, category)
	}
	return []question.Question{}, nil
}

func (m *mockQuestionRepo) Count(_ context.Context) (int, error) { return 0, nil }

func (m *mockQuestionRepo) SeedIfEmpty(_ context.Context) error { return nil }

func TestQuestionList_All(t *testing.T) {
	t.Parallel()

	repo := &mockQuestionRepo{
		listFn: func(_ context.Context, category *string) ([]question.Question, error) {
			assert.Nil(t, category, "no filter expected without a category parameter")
			return []question.Question{
				{ID: uuid.New(), Category: question.CategoryDependability, Text: "q1", OrderIndex: 1},
				{ID: uuid.New(), Category: question.CategoryMeaningImpact, Text: "q2", OrderIndex: 1},
			}, nil
		},
	}
	h := handler.NewQuestionHandler(repo)

	req, w := makeChiRequest(http.MethodGet, "/questions", nil, "/questions", nil)

	h.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	env := parseEnvelope(t, w)
	data := env["data"].([]interface{})
	assert.Len(t, data, 2)

	first := data[0].(map[string]interface{})
	assert.Equal(t, "dependability", first["category"])
	assert.Equal(t, "q1", first["text"])
	assert.Equal(t, float64(1), first["orderIndex"])
}

func TestQuestionList_CategoryFilter(t *testing.T) {
	t.Parallel()

	repo := &mockQuestionRepo{
		listFn: func(_ context.Context, category *string) ([]question.Question, error) {
			if assert.NotNil(t, category) {
				assert.Equal(t, question.CategoryPsychologicalSafety, *category)
			}
			return []question.Question{
				{ID: uuid.New(), Category: question.CategoryPsychologicalSafety, Text: "q1", OrderIndex: 1},
			}, nil
		},
	}
	h := handler.NewQuestionHandler(repo)

	req, w := makeChiRequest(http.MethodGet, "/questions?category=psychological_safety", nil, "/questions", nil)

	h.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	env := parseEnvelope(t, w)
	data := env["data"].([]interface{})
	assert.Len(t, data, 1)
}

func TestQuestionList_UnknownCategory_Empty(t *testing.T) {
	t.Parallel()

	repo := &mockQuestionRepo{
		listFn: func(_ context.Context, category *string) ([]question.Question, error) {
			return []question.Question{}, nil
		},
	}
	h := handler.NewQuestionHandler(repo)

	req, w := makeChiRequest(http.MethodGet, "/questions?category=nope", nil, "/questions", nil)

	h.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	env := parseEnvelope(t, w)
	data := env["data"].([]interface{})
	assert.Len(t, data, 0)
	assert.Nil(t, env["error"])
}
