package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/terraincognita07/ovumcy-insights/internal/services"
)

func (handler *Handler) GetSettings(c *fiber.Ctx) error {
	settings, err := handler.settings.LoadSettings(c.UserContext(), currentUserID(c))
	if err != nil {
		log.Error().Err(err).Uint("user_id", currentUserID(c)).Msg("load settings failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to load settings")
	}
	return c.JSON(settings)
}

func (handler *Handler) UpdateSettings(c *fiber.Ctx) error {
	payload := cycleSettingsPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := handler.validate.Struct(payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	update, err := services.ValidateCycleSettings(services.CycleSettingsInput{
		CycleLength:        payload.CycleLength,
		PeriodLength:       payload.PeriodLength,
		LastPeriodStartRaw: payload.LastPeriodStart,
		LastPeriodEndRaw:   payload.LastPeriodEnd,
	}, handler.now(), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, settingsValidationMessage(err))
	}

	saved, err := handler.settings.SaveCycleSettings(c.UserContext(), currentUserID(c), update)
	if err != nil {
		log.Error().Err(err).Uint("user_id", currentUserID(c)).Msg("save settings failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to save settings")
	}
	return c.JSON(saved)
}

func settingsValidationMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrSettingsCycleLengthOutOfRange):
		return "average_cycle_length must be between 15 and 90"
	case errors.Is(err, services.ErrSettingsPeriodLengthOutOfRange):
		return "average_period_length must be between 1 and 14"
	case errors.Is(err, services.ErrSettingsPeriodLengthIncompatible):
		return "average_period_length must be shorter than average_cycle_length"
	case errors.Is(err, services.ErrSettingsCycleStartDateInvalid):
		return "last_period_start must not be in the future"
	case errors.Is(err, services.ErrSettingsCycleEndDateInvalid):
		return "last_period_end must not be before last_period_start"
	default:
		return "invalid settings"
	}
}
