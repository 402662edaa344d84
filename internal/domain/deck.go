package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxDeckTitleLength is the maximum deck title length in characters.
const MaxDeckTitleLength = 200

// Deck validation errors
var (
	ErrDeckIDEmpty      = errors.New("deck ID cannot be empty")
	ErrDeckUserIDEmpty  = errors.New("deck user ID cannot be empty")
	ErrDeckTitleEmpty   = errors.New("deck title cannot be empty")
	ErrDeckTitleTooLong = errors.New("deck title must be at most 200 characters long")
)

// Deck is a named collection of flashcards owned by a user.
type Deck struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	// FlashcardCount is populated by list queries only.
	FlashcardCount int       `json:"flashcard_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewDeck creates a deck owned by userID. The title is trimmed; a blank
// description is stored as nil.
func NewDeck(userID uuid.UUID, title string, description *string) (*Deck, error) {
	now := time.Now().UTC()
	deck := &Deck{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       strings.TrimSpace(title),
		Description: normalizeDescription(description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := deck.Validate(); err != nil {
		return nil, err
	}

	return deck, nil
}

// Validate checks if the Deck has valid data.
func (d *Deck) Validate() error {
	if d.ID == uuid.Nil {
		return ErrDeckIDEmpty
	}
	if d.UserID == uuid.Nil {
		return ErrDeckUserIDEmpty
	}
	if strings.TrimSpace(d.Title) == "" {
		return ErrDeckTitleEmpty
	}
	if utf8.RuneCountInString(d.Title) > MaxDeckTitleLength {
		return ErrDeckTitleTooLong
	}
	return nil
}

// Update replaces the title and description. The deck is left unchanged if
// the new values are invalid.
func (d *Deck) Update(title string, description *string) error {
	updated := *d
	updated.Title = strings.TrimSpace(title)
	updated.Description = normalizeDescription(description)
	if err := updated.Validate(); err != nil {
		return err
	}

	updated.UpdatedAt = time.Now().UTC()
	*d = updated
	return nil
}

func normalizeDescription(description *string) *string {
	if description == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*description)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
