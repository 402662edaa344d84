package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationUnavailable is returned when no language model can be called,
	// for example because no credentials are configured.
	ErrGenerationUnavailable = errors.New("generation service unavailable")

	// ErrInvalidResponse is returned when the model responds without usable text.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the model blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrUnparseableResponse is returned when a completion does not contain a
	// list of front/back pairs.
	ErrUnparseableResponse = errors.New("unparseable flashcard response")

	// ErrEmptyNotes is returned when the notes are empty after trimming.
	ErrEmptyNotes = errors.New("notes cannot be empty")

	// ErrNoQualifyingSentences is returned when the fallback finds no sentence
	// long enough to make a flashcard from.
	ErrNoQualifyingSentences = errors.New("notes contain no sentences long enough for flashcards")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
