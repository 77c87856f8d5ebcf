package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/unifiedui/docskin/internal/config"
	"github.com/unifiedui/docskin/internal/mocks"
	"github.com/unifiedui/docskin/internal/services/skin"
	"github.com/unifiedui/docskin/internal/testutils"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	mem := mocks.NewMemoryDatabase(testutils.TestDatabase)
	client := mocks.NewMockDocDBClient(mem)
	client.On("Ping", mock.Anything).Return(nil).Maybe()

	cfg := &config.Config{CORS: config.CORSConfig{AllowedOrigins: []string{"*"}}}
	return setupRouter(cfg, client, skin.NewDatabase(mem))
}

func TestSetupRouter_ServesAPIDocs(t *testing.T) {
	router := newTestRouter(t)

	w := testutils.PerformRequest(router, "GET", "/docs/doc.json", "", nil)

	testutils.AssertStatusCode(t, http.StatusOK, w)
	body := w.Body.String()
	assert.Contains(t, body, `"title": "docskin API"`)
	for _, path := range []string{
		"/api/v1/docskin/collections",
		"/api/v1/docskin/collections/{name}/items/{id}",
		"/api/v1/docskin/collections/{name}/stream",
		"/api/v1/docskin/collections/{name}/methods/{method}",
		"/api/v1/docskin/health",
	} {
		assert.Contains(t, body, `"`+path+`"`)
	}

	w = testutils.PerformRequest(router, "GET", "/docs/index.html", "", nil)
	testutils.AssertStatusCode(t, http.StatusOK, w)
}

func TestSetupRouter_ServesAPI(t *testing.T) {
	router := newTestRouter(t)

	w := testutils.PerformRequest(router, "GET", "/api/v1/docskin/collections", "", nil)

	testutils.AssertStatusCode(t, http.StatusOK, w)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
