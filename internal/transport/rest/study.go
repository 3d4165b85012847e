package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
	"github.com/heartmarshall/vocab-trainer-backend/internal/service/study"
)

type studyService interface {
	GetDeck(ctx context.Context, listID uuid.UUID) (study.Deck, error)
	GetDashboard(ctx context.Context) (domain.Dashboard, error)
}

// StudyHandler serves the study deck and the learner dashboard.
type StudyHandler struct {
	svc studyService
	log *slog.Logger
}

// NewStudyHandler creates a new StudyHandler.
func NewStudyHandler(svc studyService, logger *slog.Logger) *StudyHandler {
	return &StudyHandler{svc: svc, log: logger.With("handler", "study")}
}

type deckResponse struct {
	List     vocabListResponse   `json:"list"`
	Cards    []studyCardResponse `json:"cards"`
	Progress []progressResponse  `json:"progress"`
}

// Deck handles GET /api/study/{listId}.
func (h *StudyHandler) Deck(w http.ResponseWriter, r *http.Request) {
	deck, err := h.svc.GetDeck(r.Context(), parseUUID(mux.Vars(r)["listId"]))
	if err != nil {
		handleError(h.log, w, r, err, "Failed to load study deck")
		return
	}

	resp := deckResponse{
		List:     toVocabList(deck.List),
		Cards:    make([]studyCardResponse, 0, len(deck.Cards)),
		Progress: make([]progressResponse, 0, len(deck.Progress)),
	}
	for _, c := range deck.Cards {
		resp.Cards = append(resp.Cards, studyCardResponse{
			flashcardResponse: toFlashcard(c.Flashcard),
			Word:              c.Word,
			Definition:        c.Definition,
		})
	}
	// Emit progress in card order so the output is stable.
	seen := make(map[uuid.UUID]bool, len(deck.Progress))
	for _, c := range deck.Cards {
		p, ok := deck.Progress[c.WordID]
		if !ok || seen[c.WordID] {
			continue
		}
		seen[c.WordID] = true
		resp.Progress = append(resp.Progress, toProgress(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

type dashboardResponse struct {
	Lists           []vocabListResponse `json:"lists"`
	WordsStudied    int                 `json:"wordsStudied"`
	WordsMastered   int                 `json:"wordsMastered"`
	AverageAccuracy int                 `json:"averageAccuracy"`
	MasteryPercent  int                 `json:"masteryPercent"`
}

// Dashboard handles GET /api/dashboard.
func (h *StudyHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.GetDashboard(r.Context())
	if err != nil {
		handleError(h.log, w, r, err, "Failed to load dashboard")
		return
	}

	resp := dashboardResponse{
		Lists:           make([]vocabListResponse, 0, len(d.Lists)),
		WordsStudied:    d.WordsStudied,
		WordsMastered:   d.WordsMastered,
		AverageAccuracy: d.AverageAccuracy,
		MasteryPercent:  d.MasteryPercent,
	}
	for _, l := range d.Lists {
		resp.Lists = append(resp.Lists, toVocabList(l.VocabList))
	}
	writeJSON(w, http.StatusOK, resp)
}
