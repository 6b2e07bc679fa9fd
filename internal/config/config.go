package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	LLM     LLMConfig     `mapstructure:"llm"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// StorageConfig contains the local database settings.
type StorageConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// LLMConfig contains all Gemini integration related settings.
type LLMConfig struct {
	// GeminiAPIKey is an optional server-wide default; users normally supply
	// their own key through the settings endpoint.
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"omitempty"`

	ModelName           string  `mapstructure:"model_name"             validate:"required"`
	MaxRetries          int     `mapstructure:"max_retries"            validate:"gte=0,lte=10"`
	RetryInitialDelayMs int     `mapstructure:"retry_initial_delay_ms" validate:"gt=0"`
	GenerateTemperature float64 `mapstructure:"generate_temperature"   validate:"gte=0,lte=2"`
	EvaluateTemperature float64 `mapstructure:"evaluate_temperature"   validate:"gte=0,lte=2"`
}
