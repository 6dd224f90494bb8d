package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Server
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	// API-Football
	APISportsKey     string        `mapstructure:"API_SPORTS_KEY"`
	APISportsBaseURL string        `mapstructure:"API_SPORTS_BASE_URL"`
	APITimeout       time.Duration `mapstructure:"API_TIMEOUT"`
	APIRateLimit     float64       `mapstructure:"API_RATE_LIMIT"`

	// Memo cache TTLs (seconds)
	CacheTTL     int `mapstructure:"CACHE_TTL"`
	LiveCacheTTL int `mapstructure:"LIVE_CACHE_TTL"`

	// Optional shared cache backend
	RedisURL string `mapstructure:"REDIS_URL"`

	// Analysis
	PreferredBookmakers []string `mapstructure:"PREFERRED_BOOKMAKERS"`
	PowerDiffStrong     float64  `mapstructure:"POWER_DIFF_STRONG"`
	PowerDiffSlight     float64  `mapstructure:"POWER_DIFF_SLIGHT"`
	Season              int      `mapstructure:"SEASON"`

	// Sessions
	SessionTTLMinutes int `mapstructure:"SESSION_TTL_MINUTES"`

	// WhatsApp transport: "twilio", "meta", "mock"
	WhatsAppProvider string `mapstructure:"WHATSAPP_PROVIDER"`

	// Twilio
	TwilioAccountSID string `mapstructure:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken  string `mapstructure:"TWILIO_AUTH_TOKEN"`
	TwilioFromNumber string `mapstructure:"TWILIO_FROM_NUMBER"`

	// Meta Cloud API
	MetaAccessToken   string `mapstructure:"META_ACCESS_TOKEN"`
	MetaPhoneNumberID string `mapstructure:"META_PHONE_NUMBER_ID"`
	MetaVerifyToken   string `mapstructure:"META_VERIFY_TOKEN"`

	// Outbound message rate limiting
	MessageRateLimit         int `mapstructure:"MESSAGE_RATE_LIMIT"`
	MessageRateWindowMinutes int `mapstructure:"MESSAGE_RATE_WINDOW_MINUTES"`

	// CORS
	CorsOrigins []string `mapstructure:"CORS_ORIGINS"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("API_SPORTS_KEY", "")
	viper.SetDefault("API_SPORTS_BASE_URL", "https://v3.football.api-sports.io")
	viper.SetDefault("API_TIMEOUT", "25s")
	viper.SetDefault("API_RATE_LIMIT", 5)
	viper.SetDefault("CACHE_TTL", 60)
	viper.SetDefault("LIVE_CACHE_TTL", 8)
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("PREFERRED_BOOKMAKERS", "bet365,betano,superbet,pinnacle")
	viper.SetDefault("POWER_DIFF_STRONG", 6)
	viper.SetDefault("POWER_DIFF_SLIGHT", 3)
	viper.SetDefault("SEASON", time.Now().Year())
	viper.SetDefault("SESSION_TTL_MINUTES", 30)
	viper.SetDefault("WHATSAPP_PROVIDER", "mock") // Default to mock for development
	viper.SetDefault("TWILIO_ACCOUNT_SID", "")
	viper.SetDefault("TWILIO_AUTH_TOKEN", "")
	viper.SetDefault("TWILIO_FROM_NUMBER", "")
	viper.SetDefault("META_ACCESS_TOKEN", "")
	viper.SetDefault("META_PHONE_NUMBER_ID", "")
	viper.SetDefault("META_VERIFY_TOKEN", "")
	viper.SetDefault("MESSAGE_RATE_LIMIT", 20)
	viper.SetDefault("MESSAGE_RATE_WINDOW_MINUTES", 60)
	viper.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")

	// Read from environment
	viper.AutomaticEnv()

	// Read config file if exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Parse comma-separated lists
	if corsStr := viper.GetString("CORS_ORIGINS"); corsStr != "" {
		config.CorsOrigins = splitTrimmed(corsStr)
	}
	if bookmakersStr := viper.GetString("PREFERRED_BOOKMAKERS"); bookmakersStr != "" {
		config.PreferredBookmakers = splitTrimmed(bookmakersStr)
	}

	return &config, nil
}

func splitTrimmed(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
