package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
	"github.com/heartmarshall/vocab-trainer-backend/internal/service/progress"
)

type progressService interface {
	RecordAnswer(ctx context.Context, input progress.AnswerInput) (domain.UserProgress, error)
	SaveSnapshot(ctx context.Context, input progress.SnapshotInput) (domain.UserProgress, error)
}

// ProgressHandler serves progress updates from study sessions.
type ProgressHandler struct {
	svc progressService
	log *slog.Logger
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(svc progressService, logger *slog.Logger) *ProgressHandler {
	return &ProgressHandler{svc: svc, log: logger.With("handler", "progress")}
}

// updateProgressRequest accepts either an answer (Correct set) or a
// client-computed snapshot of the counters.
type updateProgressRequest struct {
	UserID       string `json:"userId"`
	VocabListID  string `json:"vocabListId"`
	WordID       string `json:"wordId"`
	Correct      *bool  `json:"correct"`
	MasteryLevel int    `json:"masteryLevel"`
	ReviewCount  int    `json:"reviewCount"`
	CorrectCount int    `json:"correctCount"`
}

type updateProgressResponse struct {
	Success  bool             `json:"success"`
	Progress progressResponse `json:"progress"`
}

// Update handles POST /api/update-progress.
func (h *ProgressHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProgressRequest
	if err := decodeJSON(w, r, maxJSONBody, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var (
		row domain.UserProgress
		err error
	)
	if req.Correct != nil {
		row, err = h.svc.RecordAnswer(r.Context(), progress.AnswerInput{
			UserID:      parseUUID(req.UserID),
			VocabListID: parseUUID(req.VocabListID),
			WordID:      parseUUID(req.WordID),
			Correct:     *req.Correct,
		})
	} else {
		row, err = h.svc.SaveSnapshot(r.Context(), progress.SnapshotInput{
			UserID:       parseUUID(req.UserID),
			VocabListID:  parseUUID(req.VocabListID),
			WordID:       parseUUID(req.WordID),
			MasteryLevel: req.MasteryLevel,
			ReviewCount:  req.ReviewCount,
			CorrectCount: req.CorrectCount,
		})
	}
	if err != nil {
		handleError(h.log, w, r, err, "Failed to update progress")
		return
	}

	writeJSON(w, http.StatusOK, updateProgressResponse{Success: true, Progress: toProgress(row)})
}
