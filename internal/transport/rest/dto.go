package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
)

type vocabListResponse struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	DifficultyLevel  string    `json:"difficultyLevel"`
	TotalWords       int       `json:"totalWords"`
	IsActive         bool      `json:"isActive"`
	EstimatedMinutes int       `json:"estimatedMinutes"`
	CreatedBy        uuid.UUID `json:"createdBy"`
	CreatedAt        time.Time `json:"createdAt"`
}

func toVocabList(l domain.VocabList) vocabListResponse {
	return vocabListResponse{
		ID:               l.ID,
		Title:            l.Title,
		Description:      l.Description,
		DifficultyLevel:  l.Difficulty.String(),
		TotalWords:       l.TotalWords,
		IsActive:         l.IsActive,
		EstimatedMinutes: l.EstimatedMinutes(),
		CreatedBy:        l.CreatedBy,
		CreatedAt:        l.CreatedAt,
	}
}

func toVocabLists(lists []domain.VocabList) []vocabListResponse {
	out := make([]vocabListResponse, 0, len(lists))
	for _, l := range lists {
		out = append(out, toVocabList(l))
	}
	return out
}

type flashcardResponse struct {
	ID          uuid.UUID `json:"id"`
	VocabListID uuid.UUID `json:"vocabListId"`
	WordID      uuid.UUID `json:"wordId"`
	FrontText   string    `json:"frontText"`
	BackText    string    `json:"backText"`
	CardType    string    `json:"cardType"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toFlashcard(c domain.Flashcard) flashcardResponse {
	return flashcardResponse{
		ID:          c.ID,
		VocabListID: c.VocabListID,
		WordID:      c.WordID,
		FrontText:   c.FrontText,
		BackText:    c.BackText,
		CardType:    c.CardType.String(),
		CreatedAt:   c.CreatedAt,
	}
}

type studyCardResponse struct {
	flashcardResponse
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

type progressResponse struct {
	WordID         uuid.UUID  `json:"wordId"`
	VocabListID    uuid.UUID  `json:"vocabListId"`
	MasteryLevel   int        `json:"masteryLevel"`
	ReviewCount    int        `json:"reviewCount"`
	CorrectCount   int        `json:"correctCount"`
	LastReviewedAt *time.Time `json:"lastReviewedAt,omitempty"`
	NextReviewAt   *time.Time `json:"nextReviewAt,omitempty"`
}

func toProgress(p domain.UserProgress) progressResponse {
	resp := progressResponse{
		WordID:       p.WordID,
		VocabListID:  p.VocabListID,
		MasteryLevel: p.MasteryLevel,
		ReviewCount:  p.ReviewCount,
		CorrectCount: p.CorrectCount,
	}
	if !p.LastReviewedAt.IsZero() {
		resp.LastReviewedAt = &p.LastReviewedAt
	}
	if !p.NextReviewAt.IsZero() {
		resp.NextReviewAt = &p.NextReviewAt
	}
	return resp
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUser(u domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role.String(),
		IsAdmin:   u.Role.IsAdmin(),
		CreatedAt: u.CreatedAt,
	}
}
