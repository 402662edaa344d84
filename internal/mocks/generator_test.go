package mocks_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/phrazzld/flashdeck/internal/generation"
	"github.com/phrazzld/flashdeck/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockGenerator(t *testing.T) {
	t.Parallel()

	t.Run("returns configured response and records prompts", func(t *testing.T) {
		t.Parallel()
		gen := mocks.NewMockGeneratorWithResponse(`[{"front":"Q","back":"A"}]`)

		out, err := gen.Generate(context.Background(), "prompt one")
		require.NoError(t, err)
		assert.Equal(t, `[{"front":"Q","back":"A"}]`, out)
		assert.Equal(t, 1, gen.CallCount())
		assert.Equal(t, []string{"prompt one"}, gen.GenerateCalls.Prompts)

		gen.Reset()
		assert.Zero(t, gen.CallCount())
	})

	t.Run("returns configured error", func(t *testing.T) {
		t.Parallel()
		gen := mocks.MockGeneratorWithContentBlocked()

		_, err := gen.Generate(context.Background(), "prompt")
		assert.ErrorIs(t, err, generation.ErrContentBlocked)
	})

	t.Run("function field takes precedence", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		gen := &mocks.MockGenerator{
			Response: "ignored",
			GenerateFn: func(ctx context.Context, prompt string) (string, error) {
				return "", boom
			},
		}

		_, err := gen.Generate(context.Background(), "prompt")
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, gen.CallCount())
	})
}

func TestMockTransactor(t *testing.T) {
	t.Parallel()

	txr := &mocks.MockTransactor{}
	boom := errors.New("boom")

	require.NoError(t, txr.RunInTransaction(context.Background(), func(ctx context.Context, tx *sql.Tx) error {
		return nil
	}))
	err := txr.RunInTransaction(context.Background(), func(ctx context.Context, tx *sql.Tx) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, txr.Committed)
	assert.Equal(t, 1, txr.RolledBack)
}
