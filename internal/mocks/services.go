package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/service"
)

// MockUserService implements service.UserService for testing
type MockUserService struct {
	RegisterFn     func(ctx context.Context, email, password string) (*domain.User, error)
	AuthenticateFn func(ctx context.Context, email, password string) (*domain.User, error)
	GetUserFn      func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

var _ service.UserService = (*MockUserService)(nil)

func (m *MockUserService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, email, password)
	}
	return &domain.User{ID: uuid.New(), Email: email}, nil
}

func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if m.AuthenticateFn != nil {
		return m.AuthenticateFn(ctx, email, password)
	}
	return nil, service.ErrInvalidCredentials
}

func (m *MockUserService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if m.GetUserFn != nil {
		return m.GetUserFn(ctx, userID)
	}
	return &domain.User{ID: userID}, nil
}

// MockDeckService implements service.DeckService for testing
type MockDeckService struct {
	ListDecksFn  func(ctx context.Context, userID uuid.UUID) ([]*domain.Deck, error)
	CreateDeckFn func(ctx context.Context, userID uuid.UUID, title string, description *string) (*domain.Deck, error)
	GetDeckFn    func(ctx context.Context, userID, deckID uuid.UUID) (*service.DeckWithFlashcards, error)
	UpdateDeckFn func(
		ctx context.Context,
		userID, deckID uuid.UUID,
		title string,
		description *string,
	) (*domain.Deck, error)
	DeleteDeckFn func(ctx context.Context, userID, deckID uuid.UUID) error
}

var _ service.DeckService = (*MockDeckService)(nil)

func (m *MockDeckService) ListDecks(ctx context.Context, userID uuid.UUID) ([]*domain.Deck, error) {
	if m.ListDecksFn != nil {
		return m.ListDecksFn(ctx, userID)
	}
	return []*domain.Deck{}, nil
}

func (m *MockDeckService) CreateDeck(
	ctx context.Context,
	userID uuid.UUID,
	title string,
	description *string,
) (*domain.Deck, error) {
	if m.CreateDeckFn != nil {
		return m.CreateDeckFn(ctx, userID, title, description)
	}
	return domain.NewDeck(userID, title, description)
}

func (m *MockDeckService) GetDeck(ctx context.Context, userID, deckID uuid.UUID) (*service.DeckWithFlashcards, error) {
	if m.GetDeckFn != nil {
		return m.GetDeckFn(ctx, userID, deckID)
	}
	return nil, nil
}

func (m *MockDeckService) UpdateDeck(
	ctx context.Context,
	userID, deckID uuid.UUID,
	title string,
	description *string,
) (*domain.Deck, error) {
	if m.UpdateDeckFn != nil {
		return m.UpdateDeckFn(ctx, userID, deckID, title, description)
	}
	return nil, nil
}

func (m *MockDeckService) DeleteDeck(ctx context.Context, userID, deckID uuid.UUID) error {
	if m.DeleteDeckFn != nil {
		return m.DeleteDeckFn(ctx, userID, deckID)
	}
	return nil
}

// MockFlashcardService implements service.FlashcardService for testing
type MockFlashcardService struct {
	GenerateFlashcardsFn func(
		ctx context.Context,
		userID, deckID uuid.UUID,
		notes string,
	) (*service.GeneratedFlashcards, error)
	AddFlashcardFn    func(ctx context.Context, userID, deckID uuid.UUID, front, back string) (*domain.Flashcard, error)
	UpdateFlashcardFn func(ctx context.Context, userID, flashcardID uuid.UUID, front, back string) (*domain.Flashcard, error)
	DeleteFlashcardFn func(ctx context.Context, userID, flashcardID uuid.UUID) error

	GenerateCalls int
}

var _ service.FlashcardService = (*MockFlashcardService)(nil)

func (m *MockFlashcardService) GenerateFlashcards(
	ctx context.Context,
	userID, deckID uuid.UUID,
	notes string,
) (*service.GeneratedFlashcards, error) {
	m.GenerateCalls++
	if m.GenerateFlashcardsFn != nil {
		return m.GenerateFlashcardsFn(ctx, userID, deckID, notes)
	}
	return &service.GeneratedFlashcards{Flashcards: []*domain.Flashcard{}}, nil
}

func (m *MockFlashcardService) AddFlashcard(
	ctx context.Context,
	userID, deckID uuid.UUID,
	front, back string,
) (*domain.Flashcard, error) {
	if m.AddFlashcardFn != nil {
		return m.AddFlashcardFn(ctx, userID, deckID, front, back)
	}
	return &domain.Flashcard{ID: uuid.New(), DeckID: deckID, Front: front, Back: back}, nil
}

func (m *MockFlashcardService) UpdateFlashcard(
	ctx context.Context,
	userID, flashcardID uuid.UUID,
	front, back string,
) (*domain.Flashcard, error) {
	if m.UpdateFlashcardFn != nil {
		return m.UpdateFlashcardFn(ctx, userID, flashcardID, front, back)
	}
	return &domain.Flashcard{ID: flashcardID, Front: front, Back: back}, nil
}

func (m *MockFlashcardService) DeleteFlashcard(ctx context.Context, userID, flashcardID uuid.UUID) error {
	if m.DeleteFlashcardFn != nil {
		return m.DeleteFlashcardFn(ctx, userID, flashcardID)
	}
	return nil
}
