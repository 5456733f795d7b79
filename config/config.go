package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Time entry pipeline specifics
	Clockify       ClockifyConfig
	OpenAI         OpenAIConfig
	MSGraph        MSGraphConfig
	GoogleCalendar GoogleCalendarConfig
	Calendar       CalendarConfig

	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name     string
	Timezone string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type ClockifyConfig struct {
	APIKey  string
	BaseURL string
}

type OpenAIConfig struct {
	APIKey             string
	BaseURL            string
	Model              string
	TranscriptionModel string
}

type MSGraphConfig struct {
	TenantID string
	ClientID string
	// TokenFile holds a previously obtained oauth2 token as JSON.
	TokenFile string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// CalendarConfig selects the meeting import backend.
type CalendarConfig struct {
	DefaultProvider string // "microsoft" or "google"
}

type RateLimitConfig struct {
	RPS        float64
	Burst      int
	MaxClients int
	TTLMinutes int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.Environment.Timezone = viper.GetString("environment.timezone")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Clockify
	cfg.Clockify.APIKey = expandEnvVar(viper.GetString("clockify.api_key"))
	cfg.Clockify.BaseURL = viper.GetString("clockify.base_url")
	if clockifyKey := viper.GetString("clockify_api_key"); clockifyKey != "" {
		cfg.Clockify.APIKey = clockifyKey
	}

	// OpenAI
	cfg.OpenAI.APIKey = expandEnvVar(viper.GetString("openai.api_key"))
	cfg.OpenAI.BaseURL = viper.GetString("openai.base_url")
	cfg.OpenAI.Model = viper.GetString("openai.model")
	cfg.OpenAI.TranscriptionModel = viper.GetString("openai.transcription_model")
	if openaiKey := viper.GetString("openai_api_key"); openaiKey != "" {
		cfg.OpenAI.APIKey = openaiKey
	}
	if cfg.OpenAI.APIKey == "" {
		return nil, fmt.Errorf("openai.api_key is required - set it in config.yaml or via OPENAI_API_KEY")
	}

	// Microsoft Graph
	cfg.MSGraph.TenantID = viper.GetString("msgraph.tenant_id")
	cfg.MSGraph.ClientID = viper.GetString("msgraph.client_id")
	cfg.MSGraph.TokenFile = viper.GetString("msgraph.token_file")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Calendar provider selection
	cfg.Calendar.DefaultProvider = viper.GetString("calendar.default_provider")
	switch cfg.Calendar.DefaultProvider {
	case "microsoft", "google", "":
	default:
		return nil, fmt.Errorf("calendar.default_provider must be 'microsoft' or 'google', got %q", cfg.Calendar.DefaultProvider)
	}

	// Rate limiting
	cfg.RateLimit.RPS = viper.GetFloat64("rate_limit.rps")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")
	cfg.RateLimit.MaxClients = viper.GetInt("rate_limit.max_clients")
	cfg.RateLimit.TTLMinutes = viper.GetInt("rate_limit.ttl_minutes")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("environment.timezone", "Local")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("openai.model", "gpt-4o-mini")
	viper.SetDefault("openai.transcription_model", "whisper-1")
	viper.SetDefault("calendar.default_provider", "microsoft")
	viper.SetDefault("rate_limit.rps", 5)
	viper.SetDefault("rate_limit.burst", 10)
	viper.SetDefault("rate_limit.max_clients", 1024)
	viper.SetDefault("rate_limit.ttl_minutes", 10)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
