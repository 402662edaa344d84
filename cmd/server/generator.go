package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/flashdeck/internal/config"
	"github.com/phrazzld/flashdeck/internal/generation"
	"github.com/phrazzld/flashdeck/internal/platform/gemini"
	"github.com/phrazzld/flashdeck/internal/platform/huggingface"
)

// newGenerator returns the text-generation client for the configured
// provider. Without credentials every call fails with
// generation.ErrGenerationUnavailable and requests use the fallback.
func newGenerator(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (generation.Generator, error) {
	if !cfg.HasCredentials() {
		logger.Warn("no generation credentials configured, using heuristic fallback only",
			slog.String("provider", cfg.Provider))
		return generation.Unavailable{Reason: "no credentials for provider " + cfg.Provider}, nil
	}

	switch cfg.Provider {
	case config.ProviderGemini:
		gen, err := gemini.NewGenerator(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		return gen, nil
	case config.ProviderHuggingFace:
		gen, err := huggingface.NewGenerator(cfg, logger)
		if err != nil {
			return nil, err
		}
		return gen, nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", generation.ErrInvalidConfig, cfg.Provider)
	}
}

// newPipeline builds the generation pipeline from configuration around gen.
func newPipeline(cfg *config.Config, gen generation.Generator, logger *slog.Logger) (*generation.Pipeline, error) {
	prompts, err := generation.NewPromptBuilder(cfg.LLM.PromptTemplatePath, cfg.Generation.CardCount)
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt template: %w", err)
	}

	return generation.NewPipeline(prompts, gen, generation.FallbackOptions{
		MinUnitLength: cfg.Generation.FallbackMinUnitLength,
		MaxCards:      cfg.Generation.FallbackMaxCards,
		ExcerptLength: cfg.Generation.ExcerptLength,
	}, logger)
}
