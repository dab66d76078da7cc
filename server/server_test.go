package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortform-preprod/config"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.Paths.Output = t.TempDir()
	return New(cfg)
}

func TestHealthz(t *testing.T) {
	srv := testServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestWorkflowEndpoint(t *testing.T) {
	srv := testServer(t)

	post := func(body any) *httptest.ResponseRecorder {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/workflow", bytes.NewReader(data))
		req.Header.Set("Content-Type", "application/json")
		srv.Handler().ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid brief runs the pipeline", func(t *testing.T) {
		rec := post(map[string]any{
			"title":                   "Test Video",
			"genre":                   "Drama",
			"platform":                "tiktok",
			"target_duration_seconds": 60,
			"target_audience":         "Adults",
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp struct {
			Success     bool              `json:"success"`
			OutputFiles map[string]string `json:"output_files"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		require.Len(t, resp.OutputFiles, 7)
		_, err := os.Stat(resp.OutputFiles["script"])
		assert.NoError(t, err)
	})

	t.Run("invalid brief is a 400", func(t *testing.T) {
		rec := post(map[string]any{
			"title":                   "Test Video",
			"genre":                   "Drama",
			"platform":                "tiktok",
			"target_duration_seconds": 5,
			"target_audience":         "Adults",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "target duration")
	})

	t.Run("malformed JSON is a 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/workflow", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		srv.Handler().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
