package generation

import "github.com/phrazzld/flashdeck/internal/domain"

// Source names where a set of pairs came from.
type Source string

// Pair sources.
const (
	SourceModel    Source = "model"
	SourceFallback Source = "fallback"
)

// Result is the outcome of a pipeline run: exactly one of GeneratedResult,
// FallbackResult or FailedResult.
type Result interface {
	isResult()
}

// GeneratedResult holds pairs parsed from the model's completion.
type GeneratedResult struct {
	Pairs []domain.Pair
}

// FallbackResult holds pairs produced by the heuristic splitter after the
// model call or parse failed with Cause.
type FallbackResult struct {
	Pairs []domain.Pair
	Cause error
}

// FailedResult means no pairs could be produced.
type FailedResult struct {
	Reason error
}

func (GeneratedResult) isResult() {}
func (FallbackResult) isResult()  {}
func (FailedResult) isResult()    {}
