package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/flashdeck/internal/domain"
)

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	UserID uuid.UUID `json:"user_id"`

	// AccessToken is serialized as "token" for existing clients.
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refresh_token"`

	// ExpiresAt is the RFC 3339 time at which the access token expires.
	ExpiresAt string `json:"expires_at"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// GenerateFlashcardsRequest is the payload of POST /api/generate-flashcards.
type GenerateFlashcardsRequest struct {
	Notes  string `json:"notes"  validate:"required"`
	DeckID string `json:"deckId" validate:"required,uuid"`
}

// GenerateFlashcardsResponse is returned when flashcards were generated and saved.
type GenerateFlashcardsResponse struct {
	Success    bool                `json:"success"`
	Flashcards []FlashcardResponse `json:"flashcards"`
	Count      int                 `json:"count"`
	Source     string              `json:"source"`
}

// DeckRequest is the payload for creating or updating a deck.
type DeckRequest struct {
	Title       string  `json:"title"       validate:"required,max=200"`
	Description *string `json:"description"`
}

// FlashcardRequest is the payload for creating or editing a flashcard.
type FlashcardRequest struct {
	Front string `json:"front" validate:"required"`
	Back  string `json:"back"  validate:"required"`
}

// DeckResponse represents a deck in API responses.
type DeckResponse struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    *string   `json:"description"`
	FlashcardCount int       `json:"flashcard_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DeckDetailResponse is a deck together with its flashcards.
type DeckDetailResponse struct {
	DeckResponse
	Flashcards []FlashcardResponse `json:"flashcards"`
}

// FlashcardResponse represents a flashcard in API responses.
type FlashcardResponse struct {
	ID        uuid.UUID `json:"id"`
	DeckID    uuid.UUID `json:"deck_id"`
	Front     string    `json:"front"`
	Back      string    `json:"back"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func deckToResponse(d *domain.Deck) DeckResponse {
	return DeckResponse{
		ID:             d.ID,
		Title:          d.Title,
		Description:    d.Description,
		FlashcardCount: d.FlashcardCount,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func flashcardToResponse(f *domain.Flashcard) FlashcardResponse {
	return FlashcardResponse{
		ID:        f.ID,
		DeckID:    f.DeckID,
		Front:     f.Front,
		Back:      f.Back,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func flashcardsToResponse(cards []*domain.Flashcard) []FlashcardResponse {
	out := make([]FlashcardResponse, len(cards))
	for i, c := range cards {
		out[i] = flashcardToResponse(c)
	}
	return out
}
