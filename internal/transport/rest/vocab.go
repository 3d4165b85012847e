package rest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
	"github.com/heartmarshall/vocab-trainer-backend/internal/service/vocab"
)

// defaultMaxUpload caps upload requests when no limit is configured.
const defaultMaxUpload = 1 << 20

type vocabService interface {
	Upload(ctx context.Context, input vocab.UploadInput) (domain.VocabList, error)
	Import(ctx context.Context, input vocab.ImportInput) (domain.VocabList, error)
	ListAll(ctx context.Context) ([]domain.VocabList, error)
	ListActive(ctx context.Context) ([]domain.VocabList, error)
	SetActive(ctx context.Context, listID uuid.UUID, active bool) (domain.VocabList, error)
	DebugSnapshot(ctx context.Context) (vocab.DebugSnapshot, error)
}

// VocabHandler serves vocabulary list endpoints.
type VocabHandler struct {
	svc       vocabService
	log       *slog.Logger
	maxUpload int64
}

// NewVocabHandler creates a new VocabHandler. maxUpload bounds upload bodies
// in bytes; zero selects the default.
func NewVocabHandler(svc vocabService, logger *slog.Logger, maxUpload int64) *VocabHandler {
	if maxUpload <= 0 {
		maxUpload = defaultMaxUpload
	}
	return &VocabHandler{svc: svc, log: logger.With("handler", "vocab"), maxUpload: maxUpload}
}

type uploadRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	DifficultyLevel string `json:"difficultyLevel"`
	Text            string `json:"text"`
}

type uploadResponse struct {
	Success    bool      `json:"success"`
	ID         uuid.UUID `json:"id"`
	TotalWords int       `json:"totalWords"`
	Message    string    `json:"message"`
}

// Upload handles POST /api/admin/vocab-lists. The body is either JSON with
// the pasted "word - definition" text, or multipart form data carrying a
// .txt or .xlsx file in the "file" field.
func (h *VocabHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)

	var (
		list domain.VocabList
		err  error
	)
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		list, err = h.uploadForm(r)
	} else {
		var req uploadRequest
		if err = decodeJSON(w, r, h.maxUpload, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		list, err = h.svc.Upload(r.Context(), vocab.UploadInput{
			Title:       req.Title,
			Description: req.Description,
			Difficulty:  domain.Difficulty(req.DifficultyLevel),
			Text:        req.Text,
		})
	}
	if err != nil {
		handleError(h.log, w, r, err, "Failed to create vocabulary list")
		return
	}

	writeJSON(w, http.StatusCreated, uploadResponse{
		Success:    true,
		ID:         list.ID,
		TotalWords: list.TotalWords,
		Message:    fmt.Sprintf(`Successfully uploaded "%s" with %d words!`, list.Title, list.TotalWords),
	})
}

func (h *VocabHandler) uploadForm(r *http.Request) (domain.VocabList, error) {
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		return domain.VocabList{}, domain.NewValidationError("file", "invalid multipart form")
	}

	title := r.FormValue("title")
	description := r.FormValue("description")
	difficulty := domain.Difficulty(r.FormValue("difficultyLevel"))

	file, header, err := r.FormFile("file")
	if err != nil {
		// Form without a file: the pasted text travels as a field.
		return h.svc.Upload(r.Context(), vocab.UploadInput{
			Title:       title,
			Description: description,
			Difficulty:  difficulty,
			Text:        r.FormValue("text"),
		})
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
		pairs, err := vocab.ParseSpreadsheet(file)
		if err != nil {
			return domain.VocabList{}, domain.NewValidationError("file", "unreadable spreadsheet")
		}
		return h.svc.Import(r.Context(), vocab.ImportInput{
			Title:       title,
			Description: description,
			Difficulty:  difficulty,
			Pairs:       pairs,
		})
	}

	text, err := readText(file)
	if err != nil {
		return domain.VocabList{}, err
	}
	return h.svc.Upload(r.Context(), vocab.UploadInput{
		Title:       title,
		Description: description,
		Difficulty:  difficulty,
		Text:        text,
	})
}

func readText(f multipart.File) (string, error) {
	b, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	return string(b), nil
}

// ListActive handles GET /api/vocab-lists.
func (h *VocabHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	lists, err := h.svc.ListActive(r.Context())
	if err != nil {
		handleError(h.log, w, r, err, "Failed to fetch vocabulary lists")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"lists": toVocabLists(lists)})
}

// ListAll handles GET /api/admin/vocab-lists.
func (h *VocabHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	lists, err := h.svc.ListAll(r.Context())
	if err != nil {
		handleError(h.log, w, r, err, "Failed to fetch vocabulary lists")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"lists": toVocabLists(lists)})
}

type setActiveRequest struct {
	IsActive *bool `json:"isActive"`
}

// SetActive handles PATCH /api/admin/vocab-lists/{id}.
func (h *VocabHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	var req setActiveRequest
	if err := decodeJSON(w, r, maxJSONBody, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.IsActive == nil {
		handleError(h.log, w, r, domain.NewValidationError("isActive", "required"), "")
		return
	}

	list, err := h.svc.SetActive(r.Context(), parseUUID(mux.Vars(r)["id"]), *req.IsActive)
	if err != nil {
		handleError(h.log, w, r, err, "Failed to update vocabulary list")
		return
	}
	writeJSON(w, http.StatusOK, toVocabList(list))
}

type debugResponse struct {
	Lists      []vocabListResponse `json:"lists"`
	Flashcards []flashcardResponse `json:"flashcards"`
}

// Debug handles GET /api/admin/debug.
func (h *VocabHandler) Debug(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.DebugSnapshot(r.Context())
	if err != nil {
		handleError(h.log, w, r, err, "Failed to load debug snapshot")
		return
	}

	resp := debugResponse{
		Lists:      toVocabLists(snap.Lists),
		Flashcards: make([]flashcardResponse, 0, len(snap.Cards)),
	}
	for _, c := range snap.Cards {
		resp.Flashcards = append(resp.Flashcards, toFlashcard(c))
	}
	writeJSON(w, http.StatusOK, resp)
}
