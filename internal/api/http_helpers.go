package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/ovumcy-insights/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func currentUserID(c *fiber.Ctx) uint {
	userID, _ := c.Locals(contextUserIDKey).(uint)
	return userID
}

func (handler *Handler) currentLanguage(c *fiber.Ctx) string {
	if language, ok := c.Locals(contextLanguageKey).(string); ok && language != "" {
		return language
	}
	return handler.i18n.DefaultLanguage()
}

func (handler *Handler) today() time.Time {
	return services.DateAtLocation(handler.now(), handler.location)
}

// referenceDay reads ?date=YYYY-MM-DD, defaulting to today in the configured
// time zone.
func (handler *Handler) referenceDay(c *fiber.Ctx) (time.Time, bool) {
	raw := strings.TrimSpace(c.Query("date"))
	if raw == "" {
		return handler.today(), true
	}
	day, err := services.ParseDay(raw, handler.location)
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}

func (handler *Handler) optionalQueryDay(c *fiber.Ctx, key string) (*time.Time, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, true
	}
	day, err := services.ParseDay(raw, handler.location)
	if err != nil {
		return nil, false
	}
	return &day, true
}
