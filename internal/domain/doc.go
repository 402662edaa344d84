// Package domain contains the core entities of the application: users, the
// decks they own, the flashcards inside those decks, and the question/answer
// pairs produced by flashcard generation. It is independent of any storage or
// transport concern.
package domain
