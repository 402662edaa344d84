package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/store"
)

// MockDeckStore implements store.DeckStore for testing. Methods without a
// function field return store.ErrDeckNotFound or nil.
type MockDeckStore struct {
	CreateFn     func(ctx context.Context, deck *domain.Deck) error
	GetByIDFn    func(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error)
	ListByUserFn func(ctx context.Context, userID uuid.UUID) ([]*domain.Deck, error)
	UpdateFn     func(ctx context.Context, deck *domain.Deck) error
	DeleteFn     func(ctx context.Context, userID, deckID uuid.UUID) error
}

var _ store.DeckStore = (*MockDeckStore)(nil)

// NewMockDeckStoreWithDeck creates a MockDeckStore whose GetByID returns
// deck for its owner and ErrDeckNotFound for anyone else.
func NewMockDeckStoreWithDeck(deck *domain.Deck) *MockDeckStore {
	return &MockDeckStore{
		GetByIDFn: func(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error) {
			if deckID != deck.ID || userID != deck.UserID {
				return nil, store.ErrDeckNotFound
			}
			copied := *deck
			return &copied, nil
		},
	}
}

func (m *MockDeckStore) Create(ctx context.Context, deck *domain.Deck) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, deck)
	}
	return nil
}

func (m *MockDeckStore) GetByID(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, userID, deckID)
	}
	return nil, store.ErrDeckNotFound
}

func (m *MockDeckStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Deck, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	return []*domain.Deck{}, nil
}

func (m *MockDeckStore) Update(ctx context.Context, deck *domain.Deck) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, deck)
	}
	return nil
}

func (m *MockDeckStore) Delete(ctx context.Context, userID, deckID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID, deckID)
	}
	return nil
}

// WithTx returns the same mock.
func (m *MockDeckStore) WithTx(tx *sql.Tx) store.DeckStore {
	return m
}
