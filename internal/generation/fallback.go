package generation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/phrazzld/flashdeck/internal/domain"
)

// FallbackOptions tune the heuristic sentence splitter.
type FallbackOptions struct {
	// MinUnitLength is the minimum length in characters of a sentence, after
	// trimming, for it to become a flashcard.
	MinUnitLength int
	// MaxCards caps the number of pairs produced.
	MaxCards int
	// ExcerptLength is the maximum length of the sentence excerpt quoted in
	// the question.
	ExcerptLength int
}

// DefaultFallbackOptions returns the default splitter settings.
func DefaultFallbackOptions() FallbackOptions {
	return FallbackOptions{
		MinUnitLength: 20,
		MaxCards:      10,
		ExcerptLength: 80,
	}
}

var newlineRuns = regexp.MustCompile(`(?:\r?\n)+`)

// Fallback builds flashcards from notes without a model. Each qualifying
// sentence becomes one pair: the front asks about an excerpt of the sentence
// and the back is the sentence itself. It returns an empty slice when no
// sentence qualifies.
func Fallback(notes string, opts FallbackOptions) []domain.Pair {
	text := newlineRuns.ReplaceAllString(strings.TrimSpace(notes), " ")

	pairs := make([]domain.Pair, 0, opts.MaxCards)
	for _, unit := range splitSentences(text) {
		if len(pairs) >= opts.MaxCards {
			break
		}
		unit = strings.TrimSpace(unit)
		if unit == "" || utf8.RuneCountInString(unit) < opts.MinUnitLength {
			continue
		}
		pairs = append(pairs, domain.Pair{
			Front: fmt.Sprintf(`What is the main concept in: "%s"?`, excerpt(unit, opts.ExcerptLength)),
			Back:  unit,
		})
	}
	return pairs
}

// splitSentences splits text after '.', '!' or '?' when followed by
// whitespace. The punctuation stays with the preceding sentence and the
// whitespace is dropped.
func splitSentences(text string) []string {
	var units []string
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		i += size
		if r != '.' && r != '!' && r != '?' {
			continue
		}

		end := i
		for i < len(text) {
			next, n := utf8.DecodeRuneInString(text[i:])
			if !unicode.IsSpace(next) {
				break
			}
			i += n
		}
		if i > end {
			units = append(units, text[start:end])
			start = i
		}
	}
	if start < len(text) {
		units = append(units, text[start:])
	}
	return units
}

// excerpt shortens s to at most n characters, marking a cut with "...".
func excerpt(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:n])) + "..."
}
