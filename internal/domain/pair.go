package domain

import (
	"errors"
	"strings"
)

var (
	// ErrPairFrontEmpty is returned when a pair's front is empty after trimming.
	ErrPairFrontEmpty = errors.New("flashcard front cannot be empty")

	// ErrPairBackEmpty is returned when a pair's back is empty after trimming.
	ErrPairBackEmpty = errors.New("flashcard back cannot be empty")
)

// Pair is a question/answer pair: the content of a flashcard before it has
// been stored.
type Pair struct {
	Front string `json:"front" yaml:"front"`
	Back  string `json:"back"  yaml:"back"`
}

// NewPair trims front and back and returns the resulting pair, or an error
// if either side is empty.
func NewPair(front, back string) (Pair, error) {
	p := Pair{
		Front: strings.TrimSpace(front),
		Back:  strings.TrimSpace(back),
	}
	if err := p.Validate(); err != nil {
		return Pair{}, err
	}
	return p, nil
}

// Validate checks that both sides carry non-whitespace content.
func (p Pair) Validate() error {
	if strings.TrimSpace(p.Front) == "" {
		return ErrPairFrontEmpty
	}
	if strings.TrimSpace(p.Back) == "" {
		return ErrPairBackEmpty
	}
	return nil
}
