// Package service contains the application use cases: account registration
// and login, deck and flashcard management, and turning study notes into
// persisted flashcards.
//
// Services depend on the store interfaces and a store.Transactor, never on a
// concrete database, and translate store and generation errors into the
// sentinels below so the API layer can map them to status codes.
package service
