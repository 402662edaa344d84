package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/flashdeck/internal/config"
	"github.com/phrazzld/flashdeck/internal/domain"
	"github.com/phrazzld/flashdeck/internal/generation"
	"github.com/phrazzld/flashdeck/internal/platform/logger"
	"github.com/phrazzld/flashdeck/internal/redact"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by generate.
const (
	outputJSON = "json"
	outputYAML = "yaml"
)

var (
	notesFile      string
	generateOutput string
	generateCount  int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate flashcards from a notes file without a database",
	Long: `Runs the generation pipeline on a notes file and prints the resulting
flashcards and whether they came from the model or the heuristic fallback.
Use --notes-file=- to read notes from standard input. Logs go to stderr.`,
	Args: cobra.NoArgs,
	RunE: runGenerateCmd,
}

func init() {
	generateCmd.Flags().StringVarP(&notesFile, "notes-file", "f", "", "notes file to read, or - for stdin")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", outputJSON, "output format: json or yaml")
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 0, "number of flashcards to request from the model (default from config)")
	_ = generateCmd.MarkFlagRequired("notes-file")
}

// generatedDeck is the printed result of the generate command.
type generatedDeck struct {
	Source         generation.Source `json:"source"                    yaml:"source"`
	Count          int               `json:"count"                     yaml:"count"`
	FallbackReason string            `json:"fallback_reason,omitempty" yaml:"fallback_reason,omitempty"`
	Flashcards     []domain.Pair     `json:"flashcards"                yaml:"flashcards"`
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	if generateOutput != outputJSON && generateOutput != outputYAML {
		return fmt.Errorf("unsupported output format %q (expected %s or %s)", generateOutput, outputJSON, outputYAML)
	}

	cfg, err := config.LoadGenerationFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if generateCount != 0 {
		cfg.Generation.CardCount = generateCount
		if err := validator.New().Struct(cfg.Generation); err != nil {
			return fmt.Errorf("invalid --count: %w", err)
		}
	}

	log, err := logger.SetupWithWriter(cfg.Server, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	notes, err := readNotes(notesFile, cmd.InOrStdin())
	if err != nil {
		return err
	}

	gen, err := newGenerator(cmd.Context(), cfg.LLM, log)
	if err != nil {
		return fmt.Errorf("failed to initialize generator: %w", err)
	}

	return generateDeck(cmd.Context(), cfg, gen, log, notes, generateOutput, cmd.OutOrStdout())
}

// generateDeck runs the pipeline over notes and writes the result to w in
// the given format.
func generateDeck(
	ctx context.Context,
	cfg *config.Config,
	gen generation.Generator,
	log *slog.Logger,
	notes string,
	format string,
	w io.Writer,
) error {
	pipeline, err := newPipeline(cfg, gen, log)
	if err != nil {
		return err
	}

	var out generatedDeck
	switch r := pipeline.Run(ctx, notes).(type) {
	case generation.GeneratedResult:
		out = generatedDeck{Source: generation.SourceModel, Flashcards: r.Pairs}
	case generation.FallbackResult:
		out = generatedDeck{
			Source:         generation.SourceFallback,
			Flashcards:     r.Pairs,
			FallbackReason: redact.Error(r.Cause),
		}
	case generation.FailedResult:
		return fmt.Errorf("no flashcards could be generated: %w", r.Reason)
	default:
		return errors.New("unexpected generation result")
	}
	out.Count = len(out.Flashcards)

	if format == outputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// readNotes reads the notes file, or stdin when path is "-".
func readNotes(path string, stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read notes: %w", err)
	}
	return string(data), nil
}
