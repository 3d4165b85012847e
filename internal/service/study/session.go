package study

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
)

var (
	// ErrEmptyDeck is returned when a session is started without cards.
	ErrEmptyDeck = errors.New("deck has no cards")
	// ErrNotFlipped is returned when answering while the front is shown.
	ErrNotFlipped = errors.New("card must be flipped before answering")
	// ErrSessionComplete is returned for actions after the last card.
	ErrSessionComplete = errors.New("session is complete")
)

// ProgressRecorder persists one answered card.
type ProgressRecorder interface {
	Record(ctx context.Context, card domain.StudyCard, correct bool) error
}

// RecorderFunc adapts a function to ProgressRecorder.
type RecorderFunc func(ctx context.Context, card domain.StudyCard, correct bool) error

// Record calls f.
func (f RecorderFunc) Record(ctx context.Context, card domain.StudyCard, correct bool) error {
	return f(ctx, card, correct)
}

// Tally is the running score of a session.
type Tally struct {
	Correct   int
	Incorrect int
	Total     int
}

// Session walks through a deck one card at a time:
// front shown -> back shown (Flip) -> Answer -> next card or complete.
// It is not safe for concurrent use.
type Session struct {
	cards    []domain.StudyCard
	recorder ProgressRecorder

	index    int
	flipped  bool
	complete bool
	tally    Tally
}

// NewSession starts a session on the first card.
func NewSession(cards []domain.StudyCard, recorder ProgressRecorder) (*Session, error) {
	if len(cards) == 0 {
		return nil, ErrEmptyDeck
	}
	return &Session{cards: cards, recorder: recorder}, nil
}

// Current returns the card being studied. ok is false once complete.
func (s *Session) Current() (card domain.StudyCard, ok bool) {
	if s.complete {
		return domain.StudyCard{}, false
	}
	return s.cards[s.index], true
}

// Position returns the zero-based index of the current card and the deck size.
func (s *Session) Position() (index, total int) {
	return s.index, len(s.cards)
}

// Flipped reports whether the back of the current card is shown.
func (s *Session) Flipped() bool { return s.flipped }

// Flip toggles between front and back.
func (s *Session) Flip() {
	if !s.complete {
		s.flipped = !s.flipped
	}
}

// Answer records the result for the current card and advances. The tally and
// position advance even when recording fails; the recorder error is returned
// so the caller can report it.
func (s *Session) Answer(ctx context.Context, correct bool) error {
	if s.complete {
		return ErrSessionComplete
	}
	if !s.flipped {
		return ErrNotFlipped
	}

	card := s.cards[s.index]
	recordErr := s.recorder.Record(ctx, card, correct)

	s.tally.Total++
	if correct {
		s.tally.Correct++
	} else {
		s.tally.Incorrect++
	}

	s.flipped = false
	if s.index == len(s.cards)-1 {
		s.complete = true
	} else {
		s.index++
	}

	if recordErr != nil {
		return fmt.Errorf("record progress for word %s: %w", card.WordID, recordErr)
	}
	return nil
}

// Restart goes back to the first card and clears the tally. Cards are reused.
func (s *Session) Restart() {
	s.index = 0
	s.flipped = false
	s.complete = false
	s.tally = Tally{}
}

// IsComplete reports whether the last card has been answered.
func (s *Session) IsComplete() bool { return s.complete }

// Tally returns the running score.
func (s *Session) Tally() Tally { return s.tally }
