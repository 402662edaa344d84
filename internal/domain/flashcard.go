package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrFlashcardDeckIDEmpty is returned when a flashcard has no deck.
var ErrFlashcardDeckIDEmpty = errors.New("flashcard deck ID cannot be empty")

// Flashcard is a stored Pair belonging to a deck. ID and CreatedAt are
// assigned by the store.
type Flashcard struct {
	ID        uuid.UUID `json:"id"`
	DeckID    uuid.UUID `json:"deck_id"`
	Front     string    `json:"front"`
	Back      string    `json:"back"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Pair returns the flashcard's content.
func (f *Flashcard) Pair() Pair {
	return Pair{Front: f.Front, Back: f.Back}
}

// Validate checks if the Flashcard has valid data.
func (f *Flashcard) Validate() error {
	if f.DeckID == uuid.Nil {
		return ErrFlashcardDeckIDEmpty
	}
	return f.Pair().Validate()
}
