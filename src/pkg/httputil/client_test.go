package httputil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteJSONNoContent(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	_, err := DeleteJSON[struct{}](context.Background(), srv.Client(), srv.URL, "/api/v1/strings/gone")
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/v1/strings/gone", gotPath)
}

func TestDeleteJSONSurfacesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, "String does not exist in the system", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := DeleteJSON[struct{}](context.Background(), srv.Client(), srv.URL, "/api/v1/strings/missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "String does not exist in the system")
}

func TestGetJSONDecodesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
	}))
	defer srv.Close()

	body, err := GetJSON[map[string]string](context.Background(), srv.Client(), srv.URL, "/api/v1/health", nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", body["status"])
}
