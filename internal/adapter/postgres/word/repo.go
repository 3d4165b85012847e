// Package word implements the VocabularyWord repository using PostgreSQL.
package word

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/vocab-trainer-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vocab-trainer-backend/internal/domain"
)

const table = "vocabulary_words"

// insertChunkSize keeps a multi-row insert under the 65535 bind parameter limit.
const insertChunkSize = 1000

var columns = []string{"id", "vocab_list_id", "word", "definition", "difficulty_score", "position", "created_at"}

type row struct {
	ID              uuid.UUID `db:"id"`
	VocabListID     uuid.UUID `db:"vocab_list_id"`
	Word            string    `db:"word"`
	Definition      string    `db:"definition"`
	DifficultyScore int       `db:"difficulty_score"`
	Position        int       `db:"position"`
	CreatedAt       time.Time `db:"created_at"`
}

func (r row) toDomain() domain.VocabularyWord {
	return domain.VocabularyWord{
		ID:              r.ID,
		VocabListID:     r.VocabListID,
		Word:            r.Word,
		Definition:      r.Definition,
		DifficultyScore: r.DifficultyScore,
		Position:        r.Position,
		CreatedAt:       r.CreatedAt,
	}
}

// Repo provides vocabulary word persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new word repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// CreateBatch inserts pairs into listID with the given difficulty score and
// returns the number of inserted rows. Each word stores its index in pairs as
// its position. Large batches are split into chunks;
// callers that need all-or-nothing semantics run it inside a transaction.
func (r *Repo) CreateBatch(ctx context.Context, listID uuid.UUID, pairs []domain.WordPair, score int) (int, error) {
	if len(pairs) == 0 {
		return 0, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	inserted := 0

	for start := 0; start < len(pairs); start += insertChunkSize {
		end := min(start+insertChunkSize, len(pairs))

		insert := postgres.Builder().
			Insert(table).
			Columns("vocab_list_id", "word", "definition", "difficulty_score", "position")
		for i, p := range pairs[start:end] {
			insert = insert.Values(listID, p.Word, p.Definition, score, start+i)
		}

		sql, args, err := insert.ToSql()
		if err != nil {
			return inserted, fmt.Errorf("build insert words: %w", err)
		}

		tag, err := q.Exec(ctx, sql, args...)
		if err != nil {
			return inserted, postgres.MapError(err, "vocabulary_word", listID)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// ListByList returns the words of a list in upload order.
func (r *Repo) ListByList(ctx context.Context, listID uuid.UUID) ([]domain.VocabularyWord, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"vocab_list_id": listID}).
		OrderBy("position", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select words: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "vocabulary_word", listID)
	}

	words := make([]domain.VocabularyWord, 0, len(rows))
	for _, rw := range rows {
		words = append(words, rw.toDomain())
	}
	return words, nil
}
