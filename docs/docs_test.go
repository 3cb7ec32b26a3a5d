package docs

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBasePath(t *testing.T) {
	for in, exp := range map[string]string{
		"":      "/",
		"api":   "/api/",
		"/api":  "/api/",
		"/api/": "/api/",
	} {
		require.Equal(t, exp, normalizeBasePath(in), in)
	}
}

func TestRegisterOpenAPIService(t *testing.T) {
	rtr := mux.NewRouter()
	RegisterOpenAPIService("rocketfuel", rtr)

	rec := httptest.NewRecorder()
	rtr.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `data-url="/api/static/openapi.json"`)
	require.Contains(t, rec.Body.String(), "rocketfuel API")

	rec = httptest.NewRecorder()
	rtr.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/openapi.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	var doc struct {
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(body, &doc))
	require.Contains(t, doc.Paths, "/rocketfuel/leaderboard/{week}")
	require.Len(t, doc.Paths, 9)
}
