// Package mocks provides hand-written mock implementations of the store,
// auth, generation and service interfaces for tests.
//
// Every mock exposes a function field per method. When the field is nil the
// mock falls back to simple default behavior (in-memory data or the
// configured default values), so tests only override what they exercise:
//
//	decks := &mocks.MockDeckStore{
//	    GetByIDFn: func(ctx context.Context, userID, deckID uuid.UUID) (*domain.Deck, error) {
//	        return nil, store.ErrDeckNotFound
//	    },
//	}
package mocks
