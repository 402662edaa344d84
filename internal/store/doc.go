// Package store defines the persistence interfaces for users, decks and
// flashcards, the errors their implementations return, and helpers for
// running several store operations in one database transaction.
package store
