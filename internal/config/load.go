package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "FLASHDECK"

// providerTokenAliases maps config keys to the plain environment variable
// names the hosted model providers document.
var providerTokenAliases = map[string]string{
	"llm.gemini_api_key":           "GEMINI_API_KEY",
	"llm.huggingface_access_token": "HUGGING_FACE_ACCESS_TOKEN",
}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile behaves like Load but reads the given config file instead of
// searching for config.yaml in the working directory. An empty path keeps
// the search behavior.
func LoadFile(path string) (*Config, error) {
	cfg, err := read(path)
	if err != nil {
		return nil, err
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// LoadGenerationFile reads configuration like LoadFile but validates only
// the server, llm and generation sections. Commands that never touch the
// database or issue tokens use it.
func LoadGenerationFile(path string) (*Config, error) {
	cfg, err := read(path)
	if err != nil {
		return nil, err
	}

	validate := validator.New()
	for _, section := range []any{cfg.Server, cfg.LLM, cfg.Generation} {
		if err := validate.Struct(section); err != nil {
			return nil, fmt.Errorf("config validation failed: %w", err)
		}
	}
	return cfg, nil
}

func read(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, alias := range providerTokenAliases {
		envName := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, envName, alias); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.LLM.ModelName == "" {
		cfg.LLM.ModelName = defaultModelName(cfg.LLM.Provider)
	}

	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv can populate it during
// Unmarshal, even when no config file mentions it.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")

	v.SetDefault("database.url", "")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime_minutes", 5)
	v.SetDefault("database.auto_migrate", false)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("auth.token_lifetime_minutes", 60)
	v.SetDefault("auth.refresh_token_lifetime_minutes", 10080)

	v.SetDefault("llm.provider", ProviderGemini)
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.huggingface_access_token", "")
	v.SetDefault("llm.huggingface_base_url", "https://api-inference.huggingface.co")
	v.SetDefault("llm.model_name", "")
	v.SetDefault("llm.prompt_template_path", "")
	v.SetDefault("llm.max_new_tokens", 1000)
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.request_timeout_seconds", 60)

	v.SetDefault("generation.card_count", 10)
	v.SetDefault("generation.fallback_min_unit_length", 20)
	v.SetDefault("generation.fallback_max_cards", 10)
	v.SetDefault("generation.excerpt_length", 80)
}

func defaultModelName(provider string) string {
	switch provider {
	case ProviderHuggingFace:
		return "microsoft/DialoGPT-medium"
	case ProviderGemini:
		return "gemini-2.0-flash"
	default:
		return ""
	}
}
