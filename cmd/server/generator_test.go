package main

import (
	"context"
	"testing"

	"github.com/phrazzld/flashdeck/internal/config"
	"github.com/phrazzld/flashdeck/internal/generation"
	"github.com/phrazzld/flashdeck/internal/platform/huggingface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenerator(t *testing.T) {
	ctx := context.Background()

	t.Run("provider none is unavailable", func(t *testing.T) {
		cfg := testConfig().LLM
		cfg.Provider = config.ProviderNone
		cfg.GeminiAPIKey = "ignored"

		gen, err := newGenerator(ctx, cfg, discardLogger())
		require.NoError(t, err)
		assert.IsType(t, generation.Unavailable{}, gen)

		_, err = gen.Generate(ctx, "prompt")
		assert.ErrorIs(t, err, generation.ErrGenerationUnavailable)
	})

	t.Run("missing credentials are unavailable", func(t *testing.T) {
		cfg := testConfig().LLM
		cfg.Provider = config.ProviderGemini

		gen, err := newGenerator(ctx, cfg, discardLogger())
		require.NoError(t, err)
		assert.IsType(t, generation.Unavailable{}, gen)
	})

	t.Run("hugging face with token", func(t *testing.T) {
		cfg := testConfig().LLM
		cfg.Provider = config.ProviderHuggingFace
		cfg.HuggingFaceAccessToken = "hf_test"
		cfg.ModelName = "microsoft/DialoGPT-medium"

		gen, err := newGenerator(ctx, cfg, discardLogger())
		require.NoError(t, err)
		assert.IsType(t, &huggingface.Generator{}, gen)
	})

	t.Run("hugging face without model", func(t *testing.T) {
		cfg := testConfig().LLM
		cfg.Provider = config.ProviderHuggingFace
		cfg.HuggingFaceAccessToken = "hf_test"

		gen, err := newGenerator(ctx, cfg, discardLogger())
		assert.ErrorIs(t, err, generation.ErrInvalidConfig)
		assert.Nil(t, gen)
	})
}

func TestNewPipeline_BadTemplatePath(t *testing.T) {
	cfg := testConfig()
	cfg.LLM.PromptTemplatePath = "/nonexistent/prompt.tmpl"

	_, err := newPipeline(cfg, generation.Unavailable{}, discardLogger())
	assert.Error(t, err)
}
