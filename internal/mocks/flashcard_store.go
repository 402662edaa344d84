package mocks

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/store"
)

// MockFlashcardStore implements store.FlashcardStore for testing.
//
// The default CreateMultiple assigns ids and timestamps to the pairs and
// records them in Created.
type MockFlashcardStore struct {
	CreateMultipleFn func(ctx context.Context, deckID uuid.UUID, pairs []domain.Pair) ([]*domain.Flashcard, error)
	ListByDeckFn     func(ctx context.Context, deckID uuid.UUID) ([]*domain.Flashcard, error)
	GetByIDFn        func(ctx context.Context, userID, flashcardID uuid.UUID) (*domain.Flashcard, error)
	UpdateFn         func(ctx context.Context, userID uuid.UUID, card *domain.Flashcard) error
	DeleteFn         func(ctx context.Context, userID, flashcardID uuid.UUID) error

	mu      sync.Mutex
	Created []*domain.Flashcard
	// CreateMultipleCalls counts CreateMultiple invocations.
	CreateMultipleCalls int
}

var _ store.FlashcardStore = (*MockFlashcardStore)(nil)

func (m *MockFlashcardStore) CreateMultiple(
	ctx context.Context,
	deckID uuid.UUID,
	pairs []domain.Pair,
) ([]*domain.Flashcard, error) {
	m.mu.Lock()
	m.CreateMultipleCalls++
	m.mu.Unlock()

	if m.CreateMultipleFn != nil {
		return m.CreateMultipleFn(ctx, deckID, pairs)
	}

	now := time.Now().UTC()
	cards := make([]*domain.Flashcard, len(pairs))
	for i, p := range pairs {
		cards[i] = &domain.Flashcard{
			ID:        uuid.New(),
			DeckID:    deckID,
			Front:     p.Front,
			Back:      p.Back,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	m.mu.Lock()
	m.Created = append(m.Created, cards...)
	m.mu.Unlock()
	return cards, nil
}

func (m *MockFlashcardStore) ListByDeck(ctx context.Context, deckID uuid.UUID) ([]*domain.Flashcard, error) {
	if m.ListByDeckFn != nil {
		return m.ListByDeckFn(ctx, deckID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	cards := []*domain.Flashcard{}
	for _, c := range m.Created {
		if c.DeckID == deckID {
			cards = append(cards, c)
		}
	}
	return cards, nil
}

func (m *MockFlashcardStore) GetByID(
	ctx context.Context,
	userID, flashcardID uuid.UUID,
) (*domain.Flashcard, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, userID, flashcardID)
	}
	return nil, store.ErrFlashcardNotFound
}

func (m *MockFlashcardStore) Update(ctx context.Context, userID uuid.UUID, card *domain.Flashcard) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, userID, card)
	}
	return nil
}

func (m *MockFlashcardStore) Delete(ctx context.Context, userID, flashcardID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID, flashcardID)
	}
	return nil
}

// WithTx returns the same mock.
func (m *MockFlashcardStore) WithTx(tx *sql.Tx) store.FlashcardStore {
	return m
}
