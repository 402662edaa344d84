package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/flashdeck/internal/api/shared"
	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/platform/logger"
	"github.com/phrazzld/flashdeck/internal/service"
)

// generateFailureMessage is the error field of every failed generation response.
const generateFailureMessage = "Failed to generate flashcards"

// GenerateHandler serves POST /api/generate-flashcards.
type GenerateHandler struct {
	flashcards service.FlashcardService
	logger     *slog.Logger
}

// NewGenerateHandler creates a new GenerateHandler.
func NewGenerateHandler(flashcards service.FlashcardService, logger *slog.Logger) *GenerateHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for GenerateHandler")
	}
	return &GenerateHandler{
		flashcards: flashcards,
		logger:     logger.With(slog.String("component", "generate_handler")),
	}
}

// GenerateFlashcards turns the submitted notes into flashcards in the given
// deck and returns them with their source.
func (h *GenerateHandler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := requireUserID(w, r, log)
	if !ok {
		return
	}

	var req GenerateFlashcardsRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		h.fail(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		h.fail(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
		return
	}
	deckID, err := uuid.Parse(req.DeckID)
	if err != nil {
		err = domain.NewValidationError("deckId", "has invalid format", domain.ErrInvalidID)
		h.fail(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
		return
	}

	result, err := h.flashcards.GenerateFlashcards(r.Context(), userID, deckID, req.Notes)
	if err != nil {
		status := MapErrorToStatusCode(err)
		if status != http.StatusNotFound && status != http.StatusBadRequest {
			status = http.StatusInternalServerError
		}
		h.fail(w, r, status, GetSafeErrorMessage(err), err)
		return
	}

	log.Info("flashcards generated",
		slog.String("deck_id", deckID.String()),
		slog.Int("count", len(result.Flashcards)),
		slog.String("source", string(result.Source)))

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateFlashcardsResponse{
		Success:    true,
		Flashcards: flashcardsToResponse(result.Flashcards),
		Count:      len(result.Flashcards),
		Source:     string(result.Source),
	})
}

func (h *GenerateHandler) fail(w http.ResponseWriter, r *http.Request, status int, details string, err error) {
	shared.RespondWithErrorAndLog(w, r, status, generateFailureMessage, err, shared.WithDetails(details))
}
