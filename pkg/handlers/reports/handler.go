package reports

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/pb-tools/partner-atlas/pkg/models/api"
	"github.com/rs/zerolog"
)

// Handler serves the generated HTML report artifacts from the reports
// directory.
type Handler struct {
	dir string
}

func NewHandler(dir string) *Handler {
	return &Handler{dir: dir}
}

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	entries, err := os.ReadDir(h.dir)
	if err != nil && !os.IsNotExist(err) {
		logger.Error().Err(err).Str("dir", h.dir).Msg("failed to read reports dir")
		http.Error(w, "failed to list reports", http.StatusInternalServerError)
		return
	}

	response := []api.ReportFile{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		response = append(response, api.ReportFile{
			Name:       entry.Name(),
			SizeBytes:  info.Size(),
			ModifiedAt: info.ModTime(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode report list")
	}
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	// report names are flat files; reject anything that walks out of the dir
	if name != filepath.Base(name) || !strings.HasSuffix(name, ".html") {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.dir, name)
	if _, err := os.Stat(path); err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, path)
}
