package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/generation"
	"github.com/phrazzld/flashdeck/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestGenerateDeck_FallbackJSON(t *testing.T) {
	var out bytes.Buffer
	err := generateDeck(context.Background(), testConfig(), generation.Unavailable{Reason: "no credentials"},
		discardLogger(), testNotes, outputJSON, &out)
	require.NoError(t, err)

	var got generatedDeck
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))

	assert.Equal(t, generation.SourceFallback, got.Source)
	assert.Equal(t, 2, got.Count)
	assert.Contains(t, got.FallbackReason, "no credentials")
	assert.Equal(t, "Paris is the capital of France.", got.Flashcards[0].Back)
	assert.Equal(t, "The Eiffel Tower is in Paris.", got.Flashcards[1].Back)
}

func TestGenerateDeck_ModelYAML(t *testing.T) {
	gen := mocks.NewMockGeneratorWithResponse(
		"Here you go:\n" + `[{"front": "Capital of France?", "back": "Paris"}, {"front": "Where is the Eiffel Tower?", "back": "Paris"}]`)

	var out bytes.Buffer
	err := generateDeck(context.Background(), testConfig(), gen, discardLogger(), testNotes, outputYAML, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, gen.CallCount())

	var got generatedDeck
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))

	want := generatedDeck{
		Source: generation.SourceModel,
		Count:  2,
		Flashcards: []domain.Pair{
			{Front: "Capital of France?", Back: "Paris"},
			{Front: "Where is the Eiffel Tower?", Back: "Paris"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("generated deck mismatch (-want +got):\n%s", diff)
	}
	assert.NotContains(t, out.String(), "fallback_reason")
}

func TestGenerateDeck_NothingToGenerate(t *testing.T) {
	gen := mocks.NewMockGeneratorWithError(generation.ErrGenerationUnavailable)

	var out bytes.Buffer
	err := generateDeck(context.Background(), testConfig(), gen, discardLogger(), "Too short.", outputJSON, &out)

	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrNoQualifyingSentences)
	assert.Empty(t, out.String())
}

func TestGenerateDeck_EmptyNotes(t *testing.T) {
	gen := mocks.NewMockGeneratorWithResponse(`[]`)

	var out bytes.Buffer
	err := generateDeck(context.Background(), testConfig(), gen, discardLogger(), "   \n ", outputJSON, &out)

	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrEmptyNotes)
	assert.Equal(t, 0, gen.CallCount())
}

func TestReadNotes(t *testing.T) {
	t.Run("stdin", func(t *testing.T) {
		notes, err := readNotes("-", strings.NewReader(testNotes))
		require.NoError(t, err)
		assert.Equal(t, testNotes, notes)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes.txt")
		require.NoError(t, os.WriteFile(path, []byte(testNotes), 0o600))

		notes, err := readNotes(path, strings.NewReader("ignored"))
		require.NoError(t, err)
		assert.Equal(t, testNotes, notes)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := readNotes(filepath.Join(t.TempDir(), "absent.txt"), nil)
		assert.Error(t, err)
	})
}
