package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/flashdeck/internal/domain"
)

// DeckStore defines the interface for deck persistence. Every lookup is
// scoped to the owning user: a deck owned by someone else is reported as
// ErrDeckNotFound.
type DeckStore interface {
	// Create saves a new deck.
	Create(ctx context.Context, deck *domain.Deck) error

	// GetByID retrieves one of userID's decks.
	// Returns ErrDeckNotFound if it does not exist or is owned by another user.
	GetByID(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error)

	// ListByUser returns userID's decks, newest first, with FlashcardCount set.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Deck, error)

	// Update saves the title and description of an existing deck.
	// Returns ErrDeckNotFound if it does not exist or is owned by another user.
	Update(ctx context.Context, deck *domain.Deck) error

	// Delete removes a deck. Its flashcards are removed by the database
	// through ON DELETE CASCADE.
	// Returns ErrDeckNotFound if it does not exist or is owned by another user.
	Delete(ctx context.Context, userID, deckID uuid.UUID) error

	// WithTx returns a DeckStore that runs its queries in tx.
	WithTx(tx *sql.Tx) DeckStore
}
