package api

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/ovumcy-insights/internal/i18n"
	"github.com/terraincognita07/ovumcy-insights/internal/services"
)

const (
	contextUserIDKey   = "user_id"
	contextLanguageKey = "lang"
)

type Handler struct {
	logs      *services.LogService
	settings  *services.SettingsService
	insights  *services.InsightsService
	i18n      *i18n.Manager
	location  *time.Location
	secretKey []byte
	validate  *validator.Validate
	now       func() time.Time
}

type HandlerConfig struct {
	Logs      *services.LogService
	Settings  *services.SettingsService
	Insights  *services.InsightsService
	I18n      *i18n.Manager
	Location  *time.Location
	SecretKey string
}

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

func NewHandler(cfg HandlerConfig) (*Handler, error) {
	if cfg.Logs == nil || cfg.Settings == nil || cfg.Insights == nil {
		return nil, errors.New("services are required")
	}
	if cfg.I18n == nil {
		return nil, errors.New("i18n manager is required")
	}
	if cfg.SecretKey == "" {
		return nil, errors.New("secret key is required")
	}
	location := cfg.Location
	if location == nil {
		location = time.UTC
	}

	return &Handler{
		logs:      cfg.Logs,
		settings:  cfg.Settings,
		insights:  cfg.Insights,
		i18n:      cfg.I18n,
		location:  location,
		secretKey: []byte(cfg.SecretKey),
		validate:  newPayloadValidator(),
		now:       time.Now,
	}, nil
}
