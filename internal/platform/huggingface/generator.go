package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/phrazzld/flashdeck/internal/config"
	"github.com/phrazzld/flashdeck/internal/generation"
	"github.com/phrazzld/flashdeck/internal/platform/logger"
)

// maxErrorBody bounds how much of an error response is kept for logs.
const maxErrorBody = 512

type parameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

type request struct {
	Inputs     string     `json:"inputs"`
	Parameters parameters `json:"parameters"`
}

type generatedText struct {
	GeneratedText string `json:"generated_text"`
}

type apiError struct {
	Error string `json:"error"`
}

// Generator calls a text-generation model hosted on the Inference API.
type Generator struct {
	httpClient   *http.Client
	endpoint     string
	token        string
	maxNewTokens int
	temperature  float64
	logger       *slog.Logger
}

// Ensure Generator implements generation.Generator
var _ generation.Generator = (*Generator)(nil)

// NewGenerator creates a Generator for cfg.ModelName with an HTTP client
// that times out after cfg.RequestTimeoutSeconds.
func NewGenerator(cfg config.LLMConfig, logger *slog.Logger) (*Generator, error) {
	client := &http.Client{Timeout: time.Duration(cfg.RequestTimeoutSeconds) * time.Second}
	return NewGeneratorWithClient(cfg, client, logger)
}

// NewGeneratorWithClient creates a Generator that sends requests with httpClient.
func NewGeneratorWithClient(cfg config.LLMConfig, httpClient *http.Client, logger *slog.Logger) (*Generator, error) {
	if cfg.HuggingFaceAccessToken == "" {
		return nil, fmt.Errorf("%w: hugging face access token cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}
	endpoint, err := url.JoinPath(cfg.HuggingFaceBaseURL, "models", cfg.ModelName)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hugging face base URL: %v", generation.ErrInvalidConfig, err)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Generator{
		httpClient:   httpClient,
		endpoint:     endpoint,
		token:        cfg.HuggingFaceAccessToken,
		maxNewTokens: cfg.MaxNewTokens,
		temperature:  cfg.Temperature,
		logger: logger.With(
			slog.String("component", "huggingface_generator"),
			slog.String("model", cfg.ModelName),
		),
	}, nil
}

// Generate implements generation.Generator. Only the continuation is
// returned, not the echoed prompt.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContextOrDefault(ctx, g.logger)

	body, err := json.Marshal(request{
		Inputs: prompt,
		Parameters: parameters{
			MaxNewTokens:   g.maxNewTokens,
			Temperature:    g.temperature,
			ReturnFullText: false,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: huggingface: %w", generation.ErrGenerationUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	log.Debug("huggingface call finished",
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)))

	if resp.StatusCode != http.StatusOK {
		return "", statusError(resp)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: huggingface: reading response: %w", generation.ErrGenerationUnavailable, err)
	}
	return decodeGeneratedText(raw)
}

func statusError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	msg := strings.TrimSpace(string(data))
	var apiErr apiError
	if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
		msg = apiErr.Error
	}
	return fmt.Errorf("%w: huggingface: status %d: %s", generation.ErrGenerationUnavailable, resp.StatusCode, msg)
}

// decodeGeneratedText accepts both the list form and the single-object form
// of the text-generation response.
func decodeGeneratedText(raw []byte) (string, error) {
	trimmed := bytes.TrimSpace(raw)

	var items []generatedText
	if bytes.HasPrefix(trimmed, []byte("[")) {
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return "", fmt.Errorf("%w: %v", generation.ErrInvalidResponse, err)
		}
	} else {
		var item generatedText
		if err := json.Unmarshal(trimmed, &item); err != nil {
			return "", fmt.Errorf("%w: %v", generation.ErrInvalidResponse, err)
		}
		items = append(items, item)
	}

	if len(items) == 0 || strings.TrimSpace(items[0].GeneratedText) == "" {
		return "", fmt.Errorf("%w: no generated text", generation.ErrInvalidResponse)
	}
	return items[0].GeneratedText, nil
}
