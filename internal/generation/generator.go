package generation

import (
	"context"
	"fmt"
)

// Generator sends a prompt to a hosted text-generation model and returns the
// raw completion. Implementations make exactly one call and do not retry.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Unavailable is a Generator that always fails with ErrGenerationUnavailable.
// It stands in for a model when none is configured, so every request uses
// the fallback.
type Unavailable struct {
	Reason string
}

// Generate implements Generator.
func (u Unavailable) Generate(ctx context.Context, prompt string) (string, error) {
	if u.Reason == "" {
		return "", ErrGenerationUnavailable
	}
	return "", fmt.Errorf("%w: %s", ErrGenerationUnavailable, u.Reason)
}
