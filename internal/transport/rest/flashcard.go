package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/vocab-trainer-backend/internal/service/flashcard"
)

type flashcardService interface {
	GenerateForList(ctx context.Context, input flashcard.GenerateInput) (flashcard.GenerateResult, error)
}

// FlashcardHandler serves flashcard generation.
type FlashcardHandler struct {
	svc flashcardService
	log *slog.Logger
}

// NewFlashcardHandler creates a new FlashcardHandler.
func NewFlashcardHandler(svc flashcardService, logger *slog.Logger) *FlashcardHandler {
	return &FlashcardHandler{svc: svc, log: logger.With("handler", "flashcard")}
}

type generateRequest struct {
	VocabListID string `json:"vocabListId"`
}

type generateResponse struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	WordsProcessed    int    `json:"wordsProcessed"`
	FlashcardsCreated int    `json:"flashcardsCreated"`
}

// Generate handles POST /api/generate-flashcards. A missing list id is
// rejected with 400 before the caller is authenticated. An id that names no
// list answers 404 rather than a zero-card success.
//
// Generation pauses one second per ten words, so a large list outlives the
// server write timeout; the write deadline is lifted for this request and the
// run is bounded by the request context instead.
func (h *FlashcardHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeJSON(w, r, maxJSONBody, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.VocabListID) == "" {
		writeError(w, http.StatusBadRequest, "Vocabulary list ID is required")
		return
	}

	if err := http.NewResponseController(w).SetWriteDeadline(time.Time{}); err != nil {
		h.log.DebugContext(r.Context(), "write deadline not adjustable", slog.String("error", err.Error()))
	}

	res, err := h.svc.GenerateForList(r.Context(), flashcard.GenerateInput{
		VocabListID: parseUUID(req.VocabListID),
	})
	if err != nil {
		handleError(h.log, w, r, err, "Failed to generate flashcards")
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{
		Success:           true,
		Message:           fmt.Sprintf("Generated flashcards for %d words", res.WordsProcessed),
		WordsProcessed:    res.WordsProcessed,
		FlashcardsCreated: res.CardsCreated,
	})
}
