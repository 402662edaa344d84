package generation

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"
)

// DefaultCardCount is the number of pairs requested from the model.
const DefaultCardCount = 10

//go:embed prompt.tmpl
var defaultPromptTemplate string

// promptData is the data available to prompt templates.
type promptData struct {
	Notes string
	Count int
}

// PromptBuilder renders notes into the instruction sent to the model.
type PromptBuilder struct {
	tmpl  *template.Template
	count int
}

// NewPromptBuilder parses the prompt template at templatePath, or the
// built-in template when templatePath is empty.
func NewPromptBuilder(templatePath string, count int) (*PromptBuilder, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: card count must be positive, got %d", ErrInvalidConfig, count)
	}

	text := defaultPromptTemplate
	name := "default"
	if templatePath != "" {
		data, err := os.ReadFile(templatePath)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read prompt template: %w", ErrInvalidConfig, err)
		}
		text = string(data)
		name = templatePath
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %w", ErrInvalidConfig, err)
	}

	return &PromptBuilder{tmpl: tmpl, count: count}, nil
}

// Count returns the number of pairs the prompt asks for.
func (b *PromptBuilder) Count() int {
	return b.count
}

// Build renders the prompt for notes. Notes are trimmed and embedded verbatim.
func (b *PromptBuilder) Build(notes string) (string, error) {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return "", ErrEmptyNotes
	}

	var sb strings.Builder
	if err := b.tmpl.Execute(&sb, promptData{Notes: notes, Count: b.count}); err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}
	return sb.String(), nil
}
