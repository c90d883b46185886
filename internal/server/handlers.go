package server

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/propintel/brochure-extractor/constants"
	"github.com/propintel/brochure-extractor/internal/common"
	"github.com/propintel/brochure-extractor/internal/pipeline"
	"github.com/propintel/brochure-extractor/internal/schema"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"ok": true, "service": "brochure-extractor"})
}

// handleUpload accepts one multipart file, saves it under the upload
// dir, and processes it under both profiles so either record can be
// fetched afterwards. The document id in the response is derived from
// the original filename, not the upload id.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(s.cfg.MaxUploadMB << 20); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	v := common.NewValidator().
		Field("filename", header.Filename, common.Required, common.AllowedExtension)
	if v.HasErrors() {
		s.writeError(w, http.StatusBadRequest, v.Error().Error())
		return
	}

	uploadID := uuid.NewString()
	dir := filepath.Join(s.cfg.UploadDir, uploadID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.writeError(w, http.StatusInternalServerError, "create upload dir")
		return
	}
	path := filepath.Join(dir, filepath.Base(header.Filename))
	dst, err := os.Create(path)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "save upload")
		return
	}
	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		s.writeError(w, http.StatusInternalServerError, "save upload")
		return
	}
	dst.Close()

	var docID string
	for _, profile := range []constants.ExtractionProfile{constants.ProfileBasic, constants.ProfileDiagnostic} {
		engine := pipeline.NewEngine(profile, s.catalog, s.logger)
		proc := pipeline.NewProcessor(s.logger, s.extractor, engine)

		// Extraction failures still yield a partial record; it is
		// stored so the failure is visible through the read routes.
		rec, procErr := proc.ProcessPath(r.Context(), path)
		if procErr != nil {
			s.logger.Warn("server.process.failed", "upload_id", uploadID, "profile", string(profile), "err", procErr)
		}
		if err := schema.ValidateRecord(rec); err != nil {
			s.logger.Warn("server.record.invalid", "id", rec.ID, "profile", string(profile), "err", err)
		}
		if err := s.store.Upsert(r.Context(), profile, rec); err != nil {
			s.writeError(w, http.StatusInternalServerError, "store record")
			return
		}
		docID = rec.ID
	}

	s.logger.Info("server.upload.ok",
		"request_id", common.RequestIDFromContext(r.Context()),
		"upload_id", uploadID,
		"id", docID,
		"filename", header.Filename,
	)
	s.writeJSON(w, http.StatusCreated, map[string]any{"ok": true, "id": docID, "upload_id": uploadID})
}

func (s *Server) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	profile, _ := constants.CanonicalizeProfile(r.URL.Query().Get("profile"))

	row, err := s.store.Get(r.Context(), id, profile)
	if errors.Is(err, common.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "record not found")
		return
	}
	if err != nil {
		s.logger.Warn("server.record.get.failed", "id", id, "err", err)
		s.writeError(w, http.StatusInternalServerError, "load record")
		return
	}
	s.writeJSON(w, http.StatusOK, row.Record)
}

func (s *Server) handleListRecords(w http.ResponseWriter, r *http.Request) {
	profile, _ := constants.CanonicalizeProfile(r.URL.Query().Get("profile"))

	rows, err := s.store.List(r.Context(), profile)
	if err != nil {
		s.logger.Warn("server.record.list.failed", "err", err)
		s.writeError(w, http.StatusInternalServerError, "list records")
		return
	}

	type listEntry struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Type      string `json:"type"`
		Location  string `json:"location"`
		UpdatedAt string `json:"updated_at"`
	}
	out := make([]listEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, listEntry{
			ID:        row.ID,
			Name:      row.Name,
			Type:      string(row.Type),
			Location:  row.Location,
			UpdatedAt: row.UpdatedAt.Format(time.RFC3339),
		})
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"ok": true, "profile": string(profile), "records": out})
}
