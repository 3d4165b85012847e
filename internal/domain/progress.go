package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// MaxMastery is the upper bound of UserProgress.MasteryLevel.
	MaxMastery = 5
	// MasteredThreshold is the mastery level at which a word counts as mastered.
	MasteredThreshold = 4
	// ReviewInterval is the fixed delay until the next scheduled review.
	ReviewInterval = 24 * time.Hour
)

// UserProgress holds one user's learning counters for one word.
type UserProgress struct {
	UserID         uuid.UUID
	VocabListID    uuid.UUID
	WordID         uuid.UUID
	MasteryLevel   int
	ReviewCount    int
	CorrectCount   int
	LastReviewedAt time.Time
	NextReviewAt   time.Time
	UpdatedAt      time.Time
}

// NextMastery returns the mastery level after one answer. A correct answer
// raises the level by one up to MaxMastery; an incorrect one lowers it by one
// down to zero. Out-of-range priors are clamped first.
func NextMastery(prior int, correct bool) int {
	prior = clampMastery(prior)
	if correct {
		if prior < MaxMastery {
			return prior + 1
		}
		return prior
	}
	if prior > 0 {
		return prior - 1
	}
	return 0
}

// ApplyAnswer returns the progress row produced by answering once at now.
// The receiver is not modified; a zero UserProgress stands for "no prior row".
func (p UserProgress) ApplyAnswer(correct bool, now time.Time) UserProgress {
	next := p
	next.MasteryLevel = NextMastery(p.MasteryLevel, correct)
	next.ReviewCount = p.ReviewCount + 1
	next.CorrectCount = p.CorrectCount
	if correct {
		next.CorrectCount++
	}
	next.LastReviewedAt = now
	next.NextReviewAt = now.Add(ReviewInterval)
	next.UpdatedAt = now
	return next
}

// IsMastered reports whether the word counts as mastered on the dashboard.
func (p UserProgress) IsMastered() bool {
	return p.MasteryLevel >= MasteredThreshold
}

// Accuracy is correct/review in [0,1]. A row with no reviews has accuracy 0.
func (p UserProgress) Accuracy() float64 {
	reviews := p.ReviewCount
	if reviews < 1 {
		reviews = 1
	}
	return float64(p.CorrectCount) / float64(reviews)
}

// Validate checks the counter invariants of a client-supplied snapshot.
func (p UserProgress) Validate() error {
	var errs []FieldError

	if p.MasteryLevel < 0 || p.MasteryLevel > MaxMastery {
		errs = append(errs, FieldError{Field: "masteryLevel", Message: "must be between 0 and 5"})
	}
	if p.ReviewCount < 0 {
		errs = append(errs, FieldError{Field: "reviewCount", Message: "must be >= 0"})
	}
	if p.CorrectCount < 0 {
		errs = append(errs, FieldError{Field: "correctCount", Message: "must be >= 0"})
	}
	if p.CorrectCount > p.ReviewCount {
		errs = append(errs, FieldError{Field: "correctCount", Message: "must not exceed reviewCount"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

func clampMastery(level int) int {
	switch {
	case level < 0:
		return 0
	case level > MaxMastery:
		return MaxMastery
	}
	return level
}
