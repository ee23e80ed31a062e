package config

import (
	"log"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

const (
	defaultPort                  = "8080"
	defaultLogLevel              = "info"
	defaultDataFilePath          = "주요국 통화의 대원화환율_16153917.csv"
	defaultDataEncodings         = "utf-8,cp949,euc-kr"
	defaultDefaultCurrencyMarker = "미국달러"
	defaultDashboardTitle        = "💱 주요국 통화 대원화 환율 흐름"
	defaultDashboardDescription  = "한국은행/통계청 데이터를 기반으로 주요국 통화의 환율 변동 추이를 시각화합니다."
	defaultRateLimit             = "600-M"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     slog.Level

	// Dataset
	DataFilePath          string
	DataEncodings         []string
	DefaultCurrencyMarker string

	// Page
	DashboardTitle       string
	DashboardDescription string

	// HTTP protections
	RateLimit          string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", defaultPort)
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("DATA_FILE_PATH", defaultDataFilePath)
	viper.SetDefault("DATA_ENCODINGS", defaultDataEncodings)
	viper.SetDefault("DEFAULT_CURRENCY_MARKER", defaultDefaultCurrencyMarker)
	viper.SetDefault("DASHBOARD_TITLE", defaultDashboardTitle)
	viper.SetDefault("DASHBOARD_DESCRIPTION", defaultDashboardDescription)
	viper.SetDefault("RATE_LIMIT", defaultRateLimit)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")

	// Environment variables override the defaults above (and anything .env put into the environment).
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	logLevelStr := viper.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(logLevelStr)); err != nil {
		cfg.LogLevel = slog.LevelInfo
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to %s.\n", logLevelStr, cfg.LogLevel.String())
	}

	cfg.DataFilePath = viper.GetString("DATA_FILE_PATH")
	if cfg.DataFilePath == "" {
		cfg.DataFilePath = defaultDataFilePath
		log.Printf("Warning: DATA_FILE_PATH not set. Defaulting to %s.\n", cfg.DataFilePath)
	}

	cfg.DataEncodings = splitList(viper.GetString("DATA_ENCODINGS"))
	if len(cfg.DataEncodings) == 0 {
		cfg.DataEncodings = splitList(defaultDataEncodings)
		log.Printf("Warning: DATA_ENCODINGS is empty. Defaulting to %s.\n", defaultDataEncodings)
	}

	// An empty marker is allowed: the first currency becomes the default.
	cfg.DefaultCurrencyMarker = viper.GetString("DEFAULT_CURRENCY_MARKER")

	cfg.DashboardTitle = viper.GetString("DASHBOARD_TITLE")
	cfg.DashboardDescription = viper.GetString("DASHBOARD_DESCRIPTION")

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	if _, err := limiter.NewRateFromFormatted(cfg.RateLimit); err != nil {
		log.Printf("Warning: Invalid value for RATE_LIMIT ('%s'). Defaulting to %s.\n", cfg.RateLimit, defaultRateLimit)
		cfg.RateLimit = defaultRateLimit
	}

	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	return cfg, nil
}

// splitList parses a comma separated list, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
