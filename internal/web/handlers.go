package web

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/restaura/shiftsheet/internal/logging"
	"github.com/restaura/shiftsheet/internal/shiftimport"
)

// importResponse wraps the engine result with an ID for log correlation.
type importResponse struct {
	ImportID string `json:"importId"`
	*shiftimport.ImportResult
}

// handleImport accepts a multipart shift sheet upload, runs the import
// pipeline and returns the preview result as JSON. Malformed sheets are a
// 200 with isValid=false; only transport-level problems are HTTP errors.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	maxSize := s.cfg.Import.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		writeError(w, http.StatusBadRequest, "file too large or invalid form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	// Matrix sheets carry no month of their own; the uploader may say
	// which month the sheet covers.
	importer := s.importer
	if y := formInt(r, "year"); y > 0 {
		importer.DefaultYear = y
	}
	if m := formInt(r, "month"); m >= 1 && m <= 12 {
		importer.DefaultMonth = m
	}

	importID := uuid.NewString()
	logger := logging.WithFields(r.Context(), "import_id", importID, "file", header.Filename)
	logger.Info("import started", "size", header.Size)

	result := importer.Import(r.Context(), header.Filename, file)

	if s.roster != nil && len(result.UnknownEmployees) > 0 {
		unknown, err := s.roster.FilterUnknown(r.Context(), result.UnknownEmployees)
		if err != nil {
			logger.Warn("roster lookup failed, returning unfiltered names", "error", err)
		} else {
			result.UnknownEmployees = unknown
		}
	}

	logger.Info("import finished",
		"valid", result.IsValid,
		"records", len(result.Records),
		"errors", len(result.Errors),
		"unknown_employees", len(result.UnknownEmployees),
	)

	writeJSON(w, importResponse{ImportID: importID, ImportResult: result})
}

// handleHealth reports service liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// formInt reads an integer form value, 0 when absent or malformed.
func formInt(r *http.Request, key string) int {
	v := r.FormValue(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
