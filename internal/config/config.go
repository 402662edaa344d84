package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"     validate:"required"`
	Database   DatabaseConfig   `mapstructure:"database"   validate:"required"`
	Auth       AuthConfig       `mapstructure:"auth"       validate:"required"`
	LLM        LLMConfig        `mapstructure:"llm"        validate:"required"`
	Generation GenerationConfig `mapstructure:"generation" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL                    string `mapstructure:"url"                       validate:"required,url"`
	MaxOpenConns           int    `mapstructure:"max_open_conns"            validate:"gte=1"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns"            validate:"gte=0"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes" validate:"gte=1"`
	AutoMigrate            bool   `mapstructure:"auto_migrate"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret                   string `mapstructure:"jwt_secret"                     validate:"required,min=32"`
	BCryptCost                  int    `mapstructure:"bcrypt_cost"                    validate:"gte=4,lte=31"`
	TokenLifetimeMinutes        int    `mapstructure:"token_lifetime_minutes"         validate:"gt=0"`
	RefreshTokenLifetimeMinutes int    `mapstructure:"refresh_token_lifetime_minutes" validate:"gt=0"`
}

// LLM providers understood by the application wiring.
const (
	ProviderGemini      = "gemini"
	ProviderHuggingFace = "huggingface"
	ProviderNone        = "none"
)

// LLMConfig contains the settings for the hosted text-generation service.
// Credentials are optional: without them every request takes the heuristic
// fallback path.
type LLMConfig struct {
	Provider               string  `mapstructure:"provider"                 validate:"required,oneof=gemini huggingface none"`
	GeminiAPIKey           string  `mapstructure:"gemini_api_key"`
	HuggingFaceAccessToken string  `mapstructure:"huggingface_access_token"`
	HuggingFaceBaseURL     string  `mapstructure:"huggingface_base_url"     validate:"required,url"`
	ModelName              string  `mapstructure:"model_name"`
	PromptTemplatePath     string  `mapstructure:"prompt_template_path"`
	MaxNewTokens           int     `mapstructure:"max_new_tokens"           validate:"gt=0"`
	Temperature            float64 `mapstructure:"temperature"              validate:"gte=0,lte=2"`
	RequestTimeoutSeconds  int     `mapstructure:"request_timeout_seconds"  validate:"gt=0"`
}

// HasCredentials reports whether the selected provider has an access token.
func (c LLMConfig) HasCredentials() bool {
	switch c.Provider {
	case ProviderGemini:
		return c.GeminiAPIKey != ""
	case ProviderHuggingFace:
		return c.HuggingFaceAccessToken != ""
	default:
		return false
	}
}

// GenerationConfig tunes the note-to-flashcard pipeline.
type GenerationConfig struct {
	// CardCount is the number of pairs requested from the model.
	CardCount int `mapstructure:"card_count" validate:"gt=0,lte=50"`

	// FallbackMinUnitLength drops sentence units shorter than this many runes.
	FallbackMinUnitLength int `mapstructure:"fallback_min_unit_length" validate:"gte=1"`

	// FallbackMaxCards caps the number of heuristic pairs.
	FallbackMaxCards int `mapstructure:"fallback_max_cards" validate:"gt=0"`

	// ExcerptLength is the maximum rune length of the excerpt quoted in a
	// heuristic question.
	ExcerptLength int `mapstructure:"excerpt_length" validate:"gte=10"`
}
