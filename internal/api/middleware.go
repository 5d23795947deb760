package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired accepts "Authorization: Bearer <jwt>" and stores the uid claim
// for the handlers.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	scheme, rawToken, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(rawToken) == "" {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	userID, err := parseToken(handler.secretKey, strings.TrimSpace(rawToken))
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextUserIDKey, userID)
	return c.Next()
}

// LanguageMiddleware picks the response language from ?lang= or
// Accept-Language.
func (handler *Handler) LanguageMiddleware(c *fiber.Ctx) error {
	language := handler.i18n.DetectFromAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage))
	if raw := strings.TrimSpace(c.Query("lang")); raw != "" {
		language = handler.i18n.NormalizeLanguage(raw)
	}
	c.Locals(contextLanguageKey, language)
	return c.Next()
}
