package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	spec "github.com/teamhealth/teamhealth/api"
	"github.com/teamhealth/teamhealth/internal/api/handler"
)

func TestOpenAPI_ServesEmbeddedSpecAsJSON(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, spec.OpenAPISpec, "embedded OpenAPI spec should not be empty")

	h := handler.NewOpenAPIHandler(spec.OpenAPISpec)

	req, w := makeChiRequest(http.MethodGet, "/openapi.json", nil, "/openapi.json", nil)

	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var doc map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &doc)
	require.NoError(t, err, "embedded spec should produce valid JSON")

	assert.Contains(t, doc, "openapi")
	assert.Contains(t, doc, "paths")

	paths := doc["paths"].(map[string]interface{})
	for _, route := range []string{
		"/teams", "/teams/{id}", "/teams/{id}/assessments", "/teams/{id}/results",
		"/questions", "/assessments", "/assessments/{id}/responses",
	} {
		assert.Contains(t, paths, route)
	}
}

func TestOpenAPI_InvalidYAML(t *testing.T) {
	t.Parallel()

	h := handler.NewOpenAPIHandler([]byte(":\n\t- not valid yaml"))

	req, w := makeChiRequest(http.MethodGet, "/openapi.json", nil, "/openapi.json", nil)

	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
