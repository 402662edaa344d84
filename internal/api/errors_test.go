package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/flashdeck/internal/api"
	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/service"
	"github.com/phrazzld/flashdeck/internal/service/auth"
	"github.com/phrazzld/flashdeck/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"missing token", auth.ErrMissingToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"wrong token type", auth.ErrWrongTokenType, http.StatusUnauthorized},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"deck not found", fmt.Errorf("wrapped: %w", store.ErrDeckNotFound), http.StatusNotFound},
		{"flashcard not found", store.ErrFlashcardNotFound, http.StatusNotFound},
		{"email exists", store.ErrEmailExists, http.StatusConflict},
		{"validation", domain.NewValidationError("title", "is invalid", domain.ErrValidation), http.StatusBadRequest},
		{"invalid ID", domain.NewValidationError("id", "has invalid format", domain.ErrInvalidID), http.StatusBadRequest},
		{"no flashcards", service.ErrNoFlashcardsGenerated, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, api.MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{"deck not found", store.ErrDeckNotFound, "Deck not found"},
		{"flashcard not found", store.ErrFlashcardNotFound, "Flashcard not found"},
		{"email exists", store.ErrEmailExists, "Email already exists"},
		{"refresh token", auth.ErrExpiredRefreshToken, "Invalid refresh token"},
		{"validation field", domain.NewValidationError("notes", "is invalid", domain.ErrValidation), "Invalid notes"},
		{
			"internal details hidden",
			fmt.Errorf("query failed: SELECT * FROM users WHERE email = 'a@b.com': %w", errors.New("timeout")),
			"An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, api.GetSafeErrorMessage(tt.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	type request struct {
		Email string `validate:"required,email"`
	}

	err := validator.New().Struct(request{Email: "not-an-email"})
	assert.Equal(t, "Invalid Email: invalid email format", api.SanitizeValidationError(err))
	assert.Equal(t, http.StatusBadRequest, api.MapErrorToStatusCode(err))

	assert.Equal(t, "Validation error", api.SanitizeValidationError(errors.New("other")))
}
