// Package flashcard implements the Flashcard repository using PostgreSQL.
package flashcard

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

const table = "flashcards"

// insertChunkSize keeps a multi-row insert under the bind parameter limit.
const insertChunkSize = 1000

type row struct {
	ID          uuid.UUID `db:"id"`
	VocabListID uuid.UUID `db:"vocab_list_id"`
	WordID      uuid.UUID `db:"word_id"`
	FrontText   string    `db:"front_text"`
	BackText    string    `db:"back_text"`
	CardType    string    `db:"card_type"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Flashcard {
	return domain.Flashcard{
		ID:          r.ID,
		VocabListID: r.VocabListID,
		WordID:      r.WordID,
		FrontText:   r.FrontText,
		BackText:    r.BackText,
		CardType:    domain.CardType(r.CardType),
		CreatedAt:   r.CreatedAt,
	}
}

type studyRow struct {
	ID          uuid.UUID `db:"id"`
	VocabListID uuid.UUID `db:"vocab_list_id"`
	WordID      uuid.UUID `db:"word_id"`
	FrontText   string    `db:"front_text"`
	BackText    string    `db:"back_text"`
	CardType    string    `db:"card_type"`
	CreatedAt   time.Time `db:"created_at"`
	Word        string    `db:"word"`
	Definition  string    `db:"definition"`
}

// Repo provides flashcard persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new flashcard repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// CoveredWordIDs returns the distinct word ids that already have at least one
// card in listID.
func (r *Repo) CoveredWordIDs(ctx context.Context, listID uuid.UUID) ([]uuid.UUID, error) {
	sql, args, err := postgres.Builder().
		Select("word_id").
		Distinct().
		From(table).
		Where(squirrel.Eq{"vocab_list_id": listID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select covered words: %w", err)
	}

	var ids []uuid.UUID
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &ids, sql, args...); err != nil {
		return nil, postgres.MapError(err, "flashcard", listID)
	}
	return ids, nil
}

// InsertBatch inserts cards, skipping any (list, word, card type) triple that
// already exists, and returns the number of rows actually inserted.
func (r *Repo) InsertBatch(ctx context.Context, cards []domain.NewFlashcard) (int, error) {
	if len(cards) == 0 {
		return 0, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.db)
	inserted := 0

	for start := 0; start < len(cards); start += insertChunkSize {
		end := min(start+insertChunkSize, len(cards))

		insert := postgres.Builder().
			Insert(table).
			Columns("vocab_list_id", "word_id", "front_text", "back_text", "card_type")
		for _, c := range cards[start:end] {
			insert = insert.Values(c.VocabListID, c.WordID, c.FrontText, c.BackText, string(c.CardType))
		}
		insert = insert.Suffix("ON CONFLICT (vocab_list_id, word_id, card_type) DO NOTHING")

		sql, args, err := insert.ToSql()
		if err != nil {
			return inserted, fmt.Errorf("build insert flashcards: %w", err)
		}

		tag, err := q.Exec(ctx, sql, args...)
		if err != nil {
			return inserted, postgres.MapError(err, "flashcard", cards[start].VocabListID)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// ListStudyCards returns the cards of listID joined with their word, in the
// upload order of the words and creation order within a word.
func (r *Repo) ListStudyCards(ctx context.Context, listID uuid.UUID) ([]domain.StudyCard, error) {
	sql, args, err := postgres.Builder().
		Select(
			"f.id", "f.vocab_list_id", "f.word_id", "f.front_text", "f.back_text", "f.card_type", "f.created_at",
			"w.word", "w.definition",
		).
		From(table + " f").
		Join("vocabulary_words w ON w.id = f.word_id").
		Where(squirrel.Eq{"f.vocab_list_id": listID}).
		OrderBy("w.position", "f.created_at", "f.card_type").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select study cards: %w", err)
	}

	var rows []studyRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "flashcard", listID)
	}

	cards := make([]domain.StudyCard, 0, len(rows))
	for _, rw := range rows {
		card := row{
			ID: rw.ID, VocabListID: rw.VocabListID, WordID: rw.WordID,
			FrontText: rw.FrontText, BackText: rw.BackText, CardType: rw.CardType, CreatedAt: rw.CreatedAt,
		}
		cards = append(cards, domain.StudyCard{
			Flashcard:  card.toDomain(),
			Word:       rw.Word,
			Definition: rw.Definition,
		})
	}
	return cards, nil
}

// ListOldest returns up to limit cards across all lists in creation order.
func (r *Repo) ListOldest(ctx context.Context, limit uint64) ([]domain.Flashcard, error) {
	sql, args, err := postgres.Builder().
		Select("id", "vocab_list_id", "word_id", "front_text", "back_text", "card_type", "created_at").
		From(table).
		OrderBy("created_at", "id").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select flashcards: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "flashcard", uuid.Nil)
	}

	cards := make([]domain.Flashcard, 0, len(rows))
	for _, rw := range rows {
		cards = append(cards, rw.toDomain())
	}
	return cards, nil
}
