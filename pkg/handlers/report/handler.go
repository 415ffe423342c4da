package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bi-tools/campaign-costs/pkg/adapters"
	"github.com/bi-tools/campaign-costs/pkg/export"
	"github.com/bi-tools/campaign-costs/pkg/services/ingest"
	"github.com/bi-tools/campaign-costs/pkg/services/report"
)

const (
	maxUploadBytes   = 64 << 20
	downloadFilename = "relatorio_final_por_equipe.csv"
)

type Handler struct {
	ctrl report.Controller
}

func NewHandler(ctrl report.Controller) *Handler {
	return &Handler{ctrl: ctrl}
}

// CreateReport accepts a multipart upload of one or more feed files,
// runs the pipeline over them, and responds with either a JSON preview
// or the pt-BR CSV download depending on content negotiation.
func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, fmt.Sprintf("invalid multipart upload: %v", err), http.StatusBadRequest)
		return
	}

	var sources []ingest.Source
	for _, headers := range r.MultipartForm.File {
		for _, header := range headers {
			file, err := header.Open()
			if err != nil {
				http.Error(w, fmt.Sprintf("failed to open upload %q: %v", header.Filename, err), http.StatusBadRequest)
				return
			}
			defer file.Close()
			sources = append(sources, ingest.Source{Name: header.Filename, Reader: file})
		}
	}

	if len(sources) == 0 {
		http.Error(w, "no files uploaded", http.StatusBadRequest)
		return
	}

	result, err := h.ctrl.Run(ctx, sources)
	if err != nil {
		logger.Error().Err(err).Msg("pipeline run failed")
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	if wantsCSV(r) {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", downloadFilename))
		if err := export.NewFormatter(w).Write(result); err != nil {
			logger.Error().Err(err).Msg("failed to write csv response")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(adapters.MapCostReportDomainToApi(result)); err != nil {
		logger.Error().Err(err).Msg("failed to encode report")
	}
}

func wantsCSV(r *http.Request) bool {
	if r.URL.Query().Get("format") == "csv" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "text/csv")
}
