package generation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/flashdeck/internal/platform/logger"
	"github.com/phrazzld/flashdeck/internal/redact"
)

// Pipeline runs prompt building, one model call, parsing and the fallback
// for a set of notes. It holds no per-request state and is safe for
// concurrent use.
type Pipeline struct {
	prompts   *PromptBuilder
	generator Generator
	fallback  FallbackOptions
	logger    *slog.Logger
}

// NewPipeline creates a Pipeline. A nil generator is replaced by Unavailable.
func NewPipeline(
	prompts *PromptBuilder,
	generator Generator,
	fallback FallbackOptions,
	logger *slog.Logger,
) (*Pipeline, error) {
	if prompts == nil {
		return nil, fmt.Errorf("%w: prompt builder cannot be nil", ErrInvalidConfig)
	}
	if fallback.MaxCards <= 0 {
		return nil, fmt.Errorf("%w: fallback max cards must be positive", ErrInvalidConfig)
	}
	if generator == nil {
		generator = Unavailable{Reason: "no generator configured"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Pipeline{
		prompts:   prompts,
		generator: generator,
		fallback:  fallback,
		logger:    logger.With(slog.String("component", "generation_pipeline")),
	}, nil
}

// Run turns notes into flashcard pairs. Model and parse failures are
// recovered with the fallback; FailedResult is returned only when the notes
// are empty or the fallback finds nothing to use.
func (p *Pipeline) Run(ctx context.Context, notes string) Result {
	log := logger.FromContextOrDefault(ctx, p.logger)

	notes = strings.TrimSpace(notes)
	prompt, err := p.prompts.Build(notes)
	if err != nil {
		return FailedResult{Reason: err}
	}

	raw, err := p.generator.Generate(ctx, prompt)
	if err != nil {
		log.Warn("generation unavailable, using fallback",
			slog.String("error", redact.Error(err)))
		return p.runFallback(ctx, notes, err)
	}

	pairs, err := ParsePairs(raw)
	if err != nil {
		log.Warn("could not parse model response, using fallback",
			slog.String("error", err.Error()),
			slog.Int("response_length", len(raw)))
		return p.runFallback(ctx, notes, err)
	}

	log.Info("generated flashcards with model", slog.Int("count", len(pairs)))
	return GeneratedResult{Pairs: pairs}
}

func (p *Pipeline) runFallback(ctx context.Context, notes string, cause error) Result {
	log := logger.FromContextOrDefault(ctx, p.logger)

	pairs := Fallback(notes, p.fallback)
	if len(pairs) == 0 {
		log.Warn("fallback produced no flashcards",
			slog.Int("notes_length", len(notes)))
		return FailedResult{Reason: fmt.Errorf("%w (model: %v)", ErrNoQualifyingSentences, cause)}
	}

	log.Info("generated flashcards with fallback", slog.Int("count", len(pairs)))
	return FallbackResult{Pairs: pairs, Cause: cause}
}
