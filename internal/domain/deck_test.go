package domain_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewDeck(t *testing.T) {
	userID := uuid.New()

	deck, err := domain.NewDeck(userID, "  Biology  ", strPtr(" Cells and tissues "))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, deck.ID)
	assert.Equal(t, userID, deck.UserID)
	assert.Equal(t, "Biology", deck.Title)
	require.NotNil(t, deck.Description)
	assert.Equal(t, "Cells and tissues", *deck.Description)

	deck, err = domain.NewDeck(userID, "History", strPtr("   "))
	require.NoError(t, err)
	assert.Nil(t, deck.Description)
}

func TestNewDeck_Invalid(t *testing.T) {
	_, err := domain.NewDeck(uuid.Nil, "Biology", nil)
	assert.ErrorIs(t, err, domain.ErrDeckUserIDEmpty)

	_, err = domain.NewDeck(uuid.New(), "   ", nil)
	assert.ErrorIs(t, err, domain.ErrDeckTitleEmpty)

	_, err = domain.NewDeck(uuid.New(), strings.Repeat("é", domain.MaxDeckTitleLength+1), nil)
	assert.ErrorIs(t, err, domain.ErrDeckTitleTooLong)

	_, err = domain.NewDeck(uuid.New(), strings.Repeat("é", domain.MaxDeckTitleLength), nil)
	assert.NoError(t, err)
}

func TestDeckUpdate(t *testing.T) {
	deck, err := domain.NewDeck(uuid.New(), "Biology", nil)
	require.NoError(t, err)

	require.NoError(t, deck.Update(" Chemistry ", strPtr("Reactions")))
	assert.Equal(t, "Chemistry", deck.Title)
	assert.Equal(t, "Reactions", *deck.Description)
	assert.False(t, deck.UpdatedAt.Before(deck.CreatedAt))

	err = deck.Update("", nil)
	assert.ErrorIs(t, err, domain.ErrDeckTitleEmpty)
	assert.Equal(t, "Chemistry", deck.Title, "invalid update must not modify the deck")
}
