package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	Fireflies FirefliesConfig
	AI        AIConfig
	Export    ExportConfig
	Cache     CacheConfig
	Company   CompanyConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            string `envconfig:"PORT" default:"8080"`
	Host            string `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int    `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// FirefliesConfig holds transcript source configuration
type FirefliesConfig struct {
	APIKey                string `envconfig:"FIREFLIES_API_KEY"`
	APIURL                string `envconfig:"FIREFLIES_API_URL" default:"https://api.fireflies.ai/graphql"`
	MaxMeetingsPerRequest int    `envconfig:"MAX_MEETINGS_PER_REQUEST" default:"50"`
}

// AIConfig holds LLM provider configuration
type AIConfig struct {
	Provider        string `envconfig:"AI_PROVIDER" default:"anthropic"`
	AnthropicAPIKey string `envconfig:"ANTHROPIC_API_KEY"`
	AnthropicAPIURL string `envconfig:"ANTHROPIC_API_URL" default:"https://api.anthropic.com"`
	OpenAIAPIKey    string `envconfig:"OPENAI_API_KEY"`
	OpenAIAPIURL    string `envconfig:"OPENAI_API_URL" default:"https://api.openai.com"`
}

// ExportConfig holds report export configuration
type ExportConfig struct {
	Dir string `envconfig:"EXPORT_DIR" default:"./exports"`
}

// CacheConfig holds meeting cache configuration
type CacheConfig struct {
	DurationHours int `envconfig:"CACHE_DURATION_HOURS" default:"1"`
}

// CompanyConfig holds the sales-side context embedded into prompts
type CompanyConfig struct {
	Name          string `envconfig:"COMPANY_NAME" default:"CopeCart"`
	HostEmailsRaw string `envconfig:"HOST_EMAILS"`
}

// TimePeriod is a named lookback window for meeting queries
type TimePeriod struct {
	Days  int
	Label string
}

// TimePeriods are the supported lookback presets, keyed by CLI/API value
var TimePeriods = map[string]TimePeriod{
	"heute":           {Days: 0, Label: "Heute"},
	"letzte_woche":    {Days: 7, Label: "Letzte Woche"},
	"letzter_monat":   {Days: 30, Label: "Letzter Monat"},
	"letzte_3_monate": {Days: 90, Label: "Letzte 3 Monate"},
}

// FromDate resolves a time-period key into the start date of the window.
// "heute" means the start of the current day, not a 24h offset.
func FromDate(period string, now time.Time) (time.Time, bool) {
	tp, ok := TimePeriods[period]
	if !ok {
		return time.Time{}, false
	}
	if tp.Days == 0 {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), true
	}
	return now.AddDate(0, 0, -tp.Days), true
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg.Server); err != nil {
		return nil, fmt.Errorf("server config: %w", err)
	}
	if err := envconfig.Process("", &cfg.Fireflies); err != nil {
		return nil, fmt.Errorf("fireflies config: %w", err)
	}
	if err := envconfig.Process("", &cfg.AI); err != nil {
		return nil, fmt.Errorf("ai config: %w", err)
	}
	if err := envconfig.Process("", &cfg.Export); err != nil {
		return nil, fmt.Errorf("export config: %w", err)
	}
	if err := envconfig.Process("", &cfg.Cache); err != nil {
		return nil, fmt.Errorf("cache config: %w", err)
	}
	if err := envconfig.Process("", &cfg.Company); err != nil {
		return nil, fmt.Errorf("company config: %w", err)
	}

	return &cfg, nil
}

// HostEmails parses the comma-separated HOST_EMAILS value
func (c *Config) HostEmails() []string {
	if c.Company.HostEmailsRaw == "" {
		return nil
	}
	parts := strings.Split(c.Company.HostEmailsRaw, ",")
	emails := make([]string, 0, len(parts))
	for _, p := range parts {
		if e := strings.TrimSpace(p); e != "" {
			emails = append(emails, e)
		}
	}
	return emails
}

// CacheTTL returns the meeting cache lifetime
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.DurationHours) * time.Hour
}

// Status describes how ready the configuration is for a full analysis run
type Status struct {
	FirefliesAPI bool     `json:"fireflies_api"`
	AIProvider   bool     `json:"ai_provider"`
	Ready        bool     `json:"ready"`
	Messages     []string `json:"messages"`
}

// Validate checks the configuration and collects human-readable findings
func (c *Config) Validate() Status {
	status := Status{Messages: []string{}}

	status.FirefliesAPI = c.Fireflies.APIKey != ""
	if !status.FirefliesAPI {
		status.Messages = append(status.Messages, "Fireflies API Key fehlt. Bitte in .env konfigurieren.")
	}

	switch c.AI.Provider {
	case "anthropic":
		status.AIProvider = c.AI.AnthropicAPIKey != ""
		if !status.AIProvider {
			status.Messages = append(status.Messages, "Anthropic API Key fehlt. Bitte in .env konfigurieren.")
		}
	case "openai":
		status.AIProvider = c.AI.OpenAIAPIKey != ""
		if !status.AIProvider {
			status.Messages = append(status.Messages, "OpenAI API Key fehlt. Bitte in .env konfigurieren.")
		}
	default:
		status.Messages = append(status.Messages, fmt.Sprintf("Unbekannter AI Provider: %s", c.AI.Provider))
	}

	status.Ready = status.FirefliesAPI && status.AIProvider
	return status
}

// AllowedOriginList splits the configured origins
func (c *ServerConfig) AllowedOriginList() []string {
	return strings.Split(c.AllowedOrigins, ",")
}
