package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/mocks"
	"github.com/phrazzld/flashdeck/internal/service"
	"github.com/phrazzld/flashdeck/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeckService(t *testing.T, decks *mocks.MockDeckStore, cards *mocks.MockFlashcardStore) service.DeckService {
	t.Helper()
	svc, err := service.NewDeckService(decks, cards, &mocks.MockTransactor{}, nil)
	require.NoError(t, err)
	return svc
}

func TestCreateDeck(t *testing.T) {
	userID := uuid.New()
	var stored *domain.Deck
	decks := &mocks.MockDeckStore{
		CreateFn: func(ctx context.Context, deck *domain.Deck) error {
			stored = deck
			return nil
		},
	}
	svc := newDeckService(t, decks, &mocks.MockFlashcardStore{})

	desc := "  "
	deck, err := svc.CreateDeck(context.Background(), userID, "  Biology 101 ", &desc)
	require.NoError(t, err)
	assert.Equal(t, "Biology 101", deck.Title)
	assert.Nil(t, deck.Description)
	assert.Equal(t, userID, deck.UserID)
	assert.Same(t, deck, stored)

	_, err = svc.CreateDeck(context.Background(), userID, "   ", nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorIs(t, err, domain.ErrDeckTitleEmpty)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "title", vErr.Field)
}

func TestCreateDeck_StoreError(t *testing.T) {
	dbErr := errors.New("db down")
	decks := &mocks.MockDeckStore{
		CreateFn: func(ctx context.Context, deck *domain.Deck) error { return dbErr },
	}
	svc := newDeckService(t, decks, &mocks.MockFlashcardStore{})

	_, err := svc.CreateDeck(context.Background(), uuid.New(), "Title", nil)
	assert.ErrorIs(t, err, dbErr)
}

func TestGetDeck(t *testing.T) {
	userID := uuid.New()
	deck, err := domain.NewDeck(userID, "History", nil)
	require.NoError(t, err)

	cards := &mocks.MockFlashcardStore{}
	_, err = cards.CreateMultiple(context.Background(), deck.ID, []domain.Pair{
		{Front: "When?", Back: "1066"},
		{Front: "Who?", Back: "William"},
	})
	require.NoError(t, err)

	svc := newDeckService(t, mocks.NewMockDeckStoreWithDeck(deck), cards)

	got, err := svc.GetDeck(context.Background(), userID, deck.ID)
	require.NoError(t, err)
	assert.Equal(t, deck.ID, got.Deck.ID)
	assert.Equal(t, 2, got.Deck.FlashcardCount)
	require.Len(t, got.Flashcards, 2)
	assert.Equal(t, "When?", got.Flashcards[0].Front)

	_, err = svc.GetDeck(context.Background(), uuid.New(), deck.ID)
	assert.ErrorIs(t, err, store.ErrDeckNotFound)
}

func TestUpdateDeck(t *testing.T) {
	userID := uuid.New()
	deck, err := domain.NewDeck(userID, "Old", nil)
	require.NoError(t, err)

	decks := mocks.NewMockDeckStoreWithDeck(deck)
	var saved *domain.Deck
	decks.UpdateFn = func(ctx context.Context, d *domain.Deck) error {
		saved = d
		return nil
	}
	svc := newDeckService(t, decks, &mocks.MockFlashcardStore{})

	desc := "Chapter 3"
	updated, err := svc.UpdateDeck(context.Background(), userID, deck.ID, "New", &desc)
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "Chapter 3", *updated.Description)
	assert.Same(t, updated, saved)

	saved = nil
	_, err = svc.UpdateDeck(context.Background(), userID, deck.ID, "", nil)
	assert.ErrorIs(t, err, domain.ErrDeckTitleEmpty)
	assert.Nil(t, saved)

	_, err = svc.UpdateDeck(context.Background(), uuid.New(), deck.ID, "New", nil)
	assert.ErrorIs(t, err, store.ErrDeckNotFound)
}

func TestDeleteDeck(t *testing.T) {
	userID, deckID := uuid.New(), uuid.New()
	decks := &mocks.MockDeckStore{
		DeleteFn: func(ctx context.Context, u, d uuid.UUID) error {
			if u == userID && d == deckID {
				return nil
			}
			return store.ErrDeckNotFound
		},
	}
	svc := newDeckService(t, decks, &mocks.MockFlashcardStore{})

	assert.NoError(t, svc.DeleteDeck(context.Background(), userID, deckID))
	assert.ErrorIs(t, svc.DeleteDeck(context.Background(), uuid.New(), deckID), store.ErrDeckNotFound)
}

func TestListDecks(t *testing.T) {
	userID := uuid.New()
	want := []*domain.Deck{{ID: uuid.New(), UserID: userID, Title: "A", FlashcardCount: 3}}
	decks := &mocks.MockDeckStore{
		ListByUserFn: func(ctx context.Context, u uuid.UUID) ([]*domain.Deck, error) {
			assert.Equal(t, userID, u)
			return want, nil
		},
	}
	svc := newDeckService(t, decks, &mocks.MockFlashcardStore{})

	got, err := svc.ListDecks(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
