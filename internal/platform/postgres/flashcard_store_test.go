package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var flashcardRowColumns = []string{"id", "deck_id", "front", "back", "created_at", "updated_at"}

func TestBuildInsertFlashcards(t *testing.T) {
	deckID := uuid.New()
	pairs := []domain.Pair{
		{Front: " Q1 ", Back: "A1"},
		{Front: "Q2", Back: "A2\n"},
		{Front: "Q3", Back: "A3"},
	}

	query, args, err := buildInsertFlashcards(deckID, pairs)
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO flashcards (deck_id, front, back) VALUES "+
			"($1, $2, $3), ($1, $4, $5), ($1, $6, $7) "+
			"RETURNING id, deck_id, front, back, created_at, updated_at",
		query)
	want := []any{deckID, "Q1", "A1", "Q2", "A2", "Q3", "A3"}
	if diff := cmp.Diff(want, args); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildInsertFlashcards_InvalidPair(t *testing.T) {
	_, _, err := buildInsertFlashcards(uuid.New(), []domain.Pair{
		{Front: "Q1", Back: "A1"},
		{Front: "Q2", Back: "  "},
	})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.ErrorIs(t, err, domain.ErrPairBackEmpty)
}

func TestPostgresFlashcardStore_CreateMultiple(t *testing.T) {
	db, mock := newMock(t)
	s := NewPostgresFlashcardStore(db, discardLogger())

	deckID := uuid.New()
	first, second := uuid.New(), uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO flashcards (deck_id, front, back) VALUES ($1, $2, $3), ($1, $4, $5) RETURNING")).
		WithArgs(deckID, "Q1", "A1", "Q2", "A2").
		WillReturnRows(sqlmock.NewRows(flashcardRowColumns).
			AddRow(first.String(), deckID.String(), "Q1", "A1", now, now).
			AddRow(second.String(), deckID.String(), "Q2", "A2", now.Add(time.Microsecond), now))

	cards, err := s.CreateMultiple(context.Background(), deckID, []domain.Pair{
		{Front: "Q1", Back: "A1"},
		{Front: "Q2", Back: "A2"},
	})
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, first, cards[0].ID)
	assert.Equal(t, domain.Pair{Front: "Q2", Back: "A2"}, cards[1].Pair())
	assert.Equal(t, deckID, cards[1].DeckID)
}

func TestPostgresFlashcardStore_CreateMultiple_Rejected(t *testing.T) {
	db, mock := newMock(t)
	s := NewPostgresFlashcardStore(db, discardLogger())
	ctx := context.Background()

	_, err := s.CreateMultiple(ctx, uuid.New(), nil)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)

	_, err = s.CreateMultiple(ctx, uuid.Nil, []domain.Pair{{Front: "Q", Back: "A"}})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO flashcards")).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "flashcards_deck_id_fkey"})
	_, err = s.CreateMultiple(ctx, uuid.New(), []domain.Pair{{Front: "Q", Back: "A"}})
	assert.ErrorIs(t, err, store.ErrDeckNotFound)
}

func TestPostgresFlashcardStore_ListByDeck(t *testing.T) {
	db, mock := newMock(t)
	s := NewPostgresFlashcardStore(db, discardLogger())

	deckID := uuid.New()
	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at ASC")).
		WithArgs(deckID).
		WillReturnRows(sqlmock.NewRows(flashcardRowColumns).
			AddRow(uuid.NewString(), deckID.String(), "Q1", "A1", now, now))

	cards, err := s.ListByDeck(context.Background(), deckID)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "Q1", cards[0].Front)
}

func TestPostgresFlashcardStore_GetByID_NotOwned(t *testing.T) {
	db, mock := newMock(t)
	s := NewPostgresFlashcardStore(db, discardLogger())

	mock.ExpectQuery(regexp.QuoteMeta("JOIN decks d")).WillReturnError(sql.ErrNoRows)

	_, err := s.GetByID(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, store.ErrFlashcardNotFound)
}

func TestPostgresFlashcardStore_Update(t *testing.T) {
	db, mock := newMock(t)
	s := NewPostgresFlashcardStore(db, discardLogger())

	userID, deckID := uuid.New(), uuid.New()
	card := &domain.Flashcard{ID: uuid.New(), Front: " New front ", Back: "New back"}
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE flashcards f")).
		WithArgs("New front", "New back", card.ID, userID).
		WillReturnRows(sqlmock.NewRows([]string{"deck_id", "created_at", "updated_at"}).
			AddRow(deckID.String(), now.Add(-time.Hour), now))

	require.NoError(t, s.Update(context.Background(), userID, card))
	assert.Equal(t, "New front", card.Front)
	assert.Equal(t, deckID, card.DeckID)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE flashcards f")).WillReturnError(sql.ErrNoRows)
	assert.ErrorIs(t, s.Update(context.Background(), userID, card), store.ErrFlashcardNotFound)

	card.Back = ""
	assert.ErrorIs(t, s.Update(context.Background(), userID, card), store.ErrInvalidEntity)
}

func TestPostgresFlashcardStore_Delete(t *testing.T) {
	db, mock := newMock(t)
	s := NewPostgresFlashcardStore(db, discardLogger())

	userID, cardID := uuid.New(), uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM flashcards f")).
		WithArgs(cardID, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, s.Delete(context.Background(), userID, cardID))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM flashcards f")).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, s.Delete(context.Background(), userID, cardID), store.ErrFlashcardNotFound)
}
