package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/anudeepm/insight-service/internal/extract"
	"github.com/anudeepm/insight-service/internal/store"
)

// Extractor turns raw document bytes into plain text.
type Extractor interface {
	Text(content []byte) (string, error)
}

// Summarizer produces a summary and reports whether it was AI generated.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, bool)
}

// Handler owns the upload-and-process pipeline and insight retrieval.
type Handler struct {
	store          *store.Store
	extractor      Extractor
	summarizer     Summarizer
	maxUploadBytes int64
	log            *zap.Logger
}

func NewHandler(st *store.Store, ex Extractor, sum Summarizer, maxUploadMB int64, log *zap.Logger) *Handler {
	return &Handler{
		store:          st,
		extractor:      ex,
		summarizer:     sum,
		maxUploadBytes: maxUploadMB * 1024 * 1024,
		log:            log,
	}
}

// UploadResume accepts a single PDF, extracts its text, summarizes it and
// persists the resulting insight record. Validation and extraction failures
// abort before anything is written; a storage failure after summarization is
// surfaced and the caller must re-submit.
func (h *Handler) UploadResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("file too large (max %dMB) or invalid form", h.maxUploadBytes/(1024*1024)))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
		writeError(w, http.StatusBadRequest, "only PDF files are allowed")
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		h.log.Error("read upload", zap.String("filename", header.Filename), zap.Error(err))
		writeError(w, http.StatusBadRequest, "could not read uploaded file")
		return
	}

	text, err := h.extractor.Text(content)
	if err != nil {
		if errors.Is(err, extract.ErrMalformedDocument) {
			h.log.Warn("malformed PDF rejected", zap.String("filename", header.Filename), zap.Error(err))
			writeError(w, http.StatusBadRequest, "error reading PDF")
			return
		}
		h.log.Error("extraction failed", zap.String("filename", header.Filename), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "error processing file")
		return
	}
	if text == "" {
		writeError(w, http.StatusBadRequest, "could not extract text from PDF")
		return
	}

	summary, aiGenerated := h.summarizer.Summarize(r.Context(), text)

	// One timestamp for both the stored row and the response.
	rec := store.InsightRecord{
		Filename:      header.Filename,
		UploadDate:    time.Now().UTC().Format(time.RFC3339),
		Summary:       summary,
		IsAIGenerated: aiGenerated,
		WordCount:     len(strings.Fields(text)),
	}

	id, err := h.store.Create(r.Context(), rec)
	if err != nil {
		h.log.Error("persist insight", zap.String("filename", header.Filename), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to save insight")
		return
	}
	rec.ID = id

	h.log.Info("document processed",
		zap.Int64("id", id),
		zap.String("filename", header.Filename),
		zap.Bool("ai_generated", aiGenerated),
		zap.Int("word_count", rec.WordCount))
	writeJSON(w, http.StatusCreated, rec)
}

// GetInsights returns all records newest first, or a single record when the
// document_id query parameter is present. Any present document_id selects a
// single record; ids that match nothing, including 0, are a not-found, never
// a fallback to the full listing.
func (h *Handler) GetInsights(w http.ResponseWriter, r *http.Request) {
	if q := r.URL.Query().Get("document_id"); q != "" {
		id, err := strconv.ParseInt(q, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid document_id")
			return
		}
		h.respondWithRecord(w, r, id)
		return
	}

	records, err := h.store.ListAll(r.Context())
	if err != nil {
		h.log.Error("list insights", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"documents": records})
}

// GetInsight returns the record addressed by the path identifier.
func (h *Handler) GetInsight(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid document id")
		return
	}
	h.respondWithRecord(w, r, id)
}

func (h *Handler) respondWithRecord(w http.ResponseWriter, r *http.Request, id int64) {
	rec, err := h.store.GetByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}
	if err != nil {
		h.log.Error("get insight", zap.Int64("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "database error")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Health is a liveness probe.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "AI Document Insight Tool API is running!"})
}

// TestAI summarizes a canned sentence so operators can verify credential
// wiring without uploading a document.
func (h *Handler) TestAI(w http.ResponseWriter, r *http.Request) {
	summary, aiGenerated := h.summarizer.Summarize(r.Context(),
		"This is a test document about a software engineer with Python and FastAPI experience.")
	writeJSON(w, http.StatusOK, map[string]any{
		"summary":         summary,
		"is_ai_generated": aiGenerated,
		"status":          "success",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
