package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/pb-tools/partner-atlas/pkg/models/api"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServer(t *testing.T) (string, *httptest.Server) {
	dir := t.TempDir()
	logger := zerolog.New(zerolog.NewTestWriter(t))

	router := ConfigureRouter(Config{
		Dependencies: Dependencies{
			ReportsDir: dir,
			Logger:     logger,
		},
	})
	testServer := httptest.NewServer(router)
	t.Cleanup(testServer.Close)

	return dir, testServer
}

func TestWebAPI_ListReports(t *testing.T) {
	dir, testServer := setupServer(t)

	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "report_2025-03-14.html"), []byte("<html></html>"), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	resp, err := http.Get(testServer.URL + "/reports")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var files []api.ReportFile
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&files))
	require.Len(t, files, 1)
	assert.Equal(t, "report_2025-03-14.html", files[0].Name)
	assert.Equal(t, int64(13), files[0].SizeBytes)
}

func TestWebAPI_ListReports_EmptyDir(t *testing.T) {
	_, testServer := setupServer(t)

	resp, err := http.Get(testServer.URL + "/reports")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(body))
}

func TestWebAPI_GetReport(t *testing.T) {
	dir, testServer := setupServer(t)

	content := "<html><body>report</body></html>"
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "report_2025-03-14.html"), []byte(content), 0o644))

	t.Run("success", func(t *testing.T) {
		resp, err := http.Get(testServer.URL + "/reports/report_2025-03-14.html")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, content, string(body))
	})

	t.Run("not found", func(t *testing.T) {
		resp, err := http.Get(testServer.URL + "/reports/report_1999-01-01.html")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("rejects non-html names", func(t *testing.T) {
		resp, err := http.Get(testServer.URL + "/reports/notes.txt")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
