package testhelper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with the given role.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + uniqueSuffix() + "@example.com",
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, role, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedVocabList inserts an active intermediate list owned by createdBy with
// wordCount words named word-0..word-N. Words are returned in insertion order.
func SeedVocabList(t *testing.T, pool *pgxpool.Pool, createdBy uuid.UUID, wordCount int) (domain.VocabList, []domain.VocabularyWord) {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	list := domain.VocabList{
		ID:          uuid.New(),
		Title:       "List " + uniqueSuffix(),
		Description: "seeded",
		Difficulty:  domain.DifficultyIntermediate,
		TotalWords:  wordCount,
		IsActive:    true,
		CreatedBy:   createdBy,
		CreatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO vocab_lists (id, title, description, difficulty, total_words, is_active, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		list.ID, list.Title, list.Description, string(list.Difficulty), list.TotalWords, list.IsActive, list.CreatedBy, list.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVocabList insert list: %v", err)
	}

	words := make([]domain.VocabularyWord, 0, wordCount)
	for i := range wordCount {
		w := domain.VocabularyWord{
			ID:              uuid.New(),
			VocabListID:     list.ID,
			Word:            fmt.Sprintf("word-%d", i),
			Definition:      fmt.Sprintf("definition %d", i),
			DifficultyScore: list.Difficulty.Score(),
			Position:        i,
			CreatedAt:       now.Add(time.Duration(i) * time.Millisecond),
		}
		_, err := pool.Exec(ctx,
			`INSERT INTO vocabulary_words (id, vocab_list_id, word, definition, difficulty_score, position, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			w.ID, w.VocabListID, w.Word, w.Definition, w.DifficultyScore, w.Position, w.CreatedAt,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedVocabList insert word: %v", err)
		}
		words = append(words, w)
	}

	return list, words
}

// SeedFlashcard inserts a single card for word.
func SeedFlashcard(t *testing.T, pool *pgxpool.Pool, word domain.VocabularyWord, cardType domain.CardType) domain.Flashcard {
	t.Helper()

	card := domain.Flashcard{
		ID:          uuid.New(),
		VocabListID: word.VocabListID,
		WordID:      word.ID,
		FrontText:   word.Word,
		BackText:    word.Definition,
		CardType:    cardType,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO flashcards (id, vocab_list_id, word_id, front_text, back_text, card_type)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at`,
		card.ID, card.VocabListID, card.WordID, card.FrontText, card.BackText, string(card.CardType),
	).Scan(&card.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedFlashcard: %v", err)
	}

	return card
}
