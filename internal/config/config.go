package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/terraincognita07/ovumcy-insights/internal/security"
	"github.com/terraincognita07/ovumcy-insights/internal/services"
)

var (
	ErrSecretKeyMissing     = errors.New("SECRET_KEY is required")
	ErrSecretKeyPlaceholder = errors.New("SECRET_KEY must not use a placeholder value")
	ErrSecretKeyTooShort    = errors.New("SECRET_KEY must be at least 32 characters")
	ErrInvalidPort          = errors.New("PORT must be a number between 1 and 65535")
)

var placeholderSecrets = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
}

// AppConfig holds everything the commands need to wire the service.
type AppConfig struct {
	Port               string
	DBPath             string
	Location           *time.Location
	SecretKey          string
	DefaultLanguage    string
	LogsFolder         string
	AccessLog          bool
	CORSAllowOrigins   string
	LogFetchLimit      int
	MergeGapDays       int
	MaxSymptomCycleDay int
}

// Load reads .env files (binary directory first, then the working directory)
// and resolves the configuration from the environment. Secret validation is
// left to the commands that need it.
func Load() (*AppConfig, error) {
	if exePath, err := os.Executable(); err == nil {
		envPath := filepath.Join(filepath.Dir(exePath), ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("loaded configuration from binary directory")
		}
	}
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file in working directory, relying on environment variables")
	}

	port, err := resolvePort()
	if err != nil {
		return nil, err
	}

	return &AppConfig{
		Port:               port,
		DBPath:             getEnv("DB_PATH", filepath.Join("data", "ovumcy-insights.db")),
		Location:           resolveLocation(getEnv("TZ", "UTC")),
		SecretKey:          strings.TrimSpace(os.Getenv("SECRET_KEY")),
		DefaultLanguage:    getEnv("DEFAULT_LANGUAGE", "en"),
		LogsFolder:         os.Getenv("LOGS_FOLDER"),
		AccessLog:          getEnvBool("HTTP_ACCESS_LOG", true),
		CORSAllowOrigins:   getEnv("CORS_ALLOW_ORIGINS", ""),
		LogFetchLimit:      getEnvInt("LOG_FETCH_LIMIT", services.DefaultLogFetchLimit),
		MergeGapDays:       getEnvInt("CYCLE_MERGE_GAP_DAYS", services.DefaultMergeGapDays),
		MaxSymptomCycleDay: getEnvInt("SYMPTOM_MAX_CYCLE_DAY", services.DefaultMaxSymptomCycleDay),
	}, nil
}

// InsightOptions maps the engine tuning knobs onto the services options.
func (cfg *AppConfig) InsightOptions() services.InsightOptions {
	options := services.DefaultInsightOptions()
	options.MergeGapDays = cfg.MergeGapDays
	options.MaxSymptomCycleDay = cfg.MaxSymptomCycleDay
	return options
}

// ValidateSecretKey is required before signing or verifying tokens.
func (cfg *AppConfig) ValidateSecretKey() error {
	return validateSecretKey(cfg.SecretKey)
}

func validateSecretKey(secret string) error {
	switch {
	case secret == "":
		return ErrSecretKeyMissing
	case isPlaceholderSecret(secret):
		return ErrSecretKeyPlaceholder
	case len(secret) < security.MinSecretKeyLength:
		return ErrSecretKeyTooShort
	}
	return nil
}

func isPlaceholderSecret(secret string) bool {
	_, ok := placeholderSecrets[strings.ToLower(secret)]
	return ok
}

func resolvePort() (string, error) {
	port := strings.TrimSpace(getEnv("PORT", "8080"))
	if port == "" {
		return "8080", nil
	}
	value, err := strconv.Atoi(port)
	if err != nil || value < 1 || value > 65535 {
		return "", ErrInvalidPort
	}
	return port, nil
}

func resolveLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Warn().Str("tz", name).Msg("invalid TZ, falling back to UTC")
		return time.UTC
	}
	return location
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(strings.TrimSpace(value)); err == nil && intVal > 0 {
			return intVal
		}
	}
	return fallback
}
