package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/terraincognita07/ovumcy-insights/internal/models"
	"github.com/terraincognita07/ovumcy-insights/internal/services"
)

func (handler *Handler) ListLogs(c *fiber.Ctx) error {
	from, ok := handler.optionalQueryDay(c, "from")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "from must be a YYYY-MM-DD date")
	}
	to, ok := handler.optionalQueryDay(c, "to")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "to must be a YYYY-MM-DD date")
	}
	if from != nil && to != nil && to.Before(*from) {
		return apiError(c, fiber.StatusBadRequest, "to must not be before from")
	}

	entries, err := handler.logs.ListEntries(c.UserContext(), currentUserID(c), from, to, handler.location)
	if err != nil {
		log.Error().Err(err).Uint("user_id", currentUserID(c)).Msg("list log entries failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to load logs")
	}
	if entries == nil {
		entries = []models.LogEntry{}
	}
	return c.JSON(fiber.Map{"entries": entries})
}

func (handler *Handler) CreateLog(c *fiber.Ctx) error {
	payload := logEntryPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := handler.validate.Struct(payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	date, err := services.ParseDay(payload.Date, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "date must be a YYYY-MM-DD date")
	}
	entry, err := handler.logs.CreateEntry(c.UserContext(), currentUserID(c), services.LogEntryInput{
		Date:          date,
		LogType:       payload.LogType,
		FlowIntensity: payload.FlowIntensity,
		Symptoms:      payload.Symptoms,
		Moods:         payload.Moods,
		StressLevel:   payload.StressLevel,
		SleepQuality:  payload.SleepQuality,
		SleepHours:    payload.SleepHours,
		WaterIntake:   payload.WaterIntake,
		Notes:         payload.Notes,
	}, handler.location)
	if err != nil {
		return handler.logWriteError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) DeleteLog(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid log id")
	}
	if err := handler.logs.DeleteEntry(c.UserContext(), currentUserID(c), id); err != nil {
		return handler.logWriteError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) logWriteError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrLogEntryNotFound):
		return apiError(c, fiber.StatusNotFound, "log entry not found")
	case errors.Is(err, services.ErrInvalidLogDate),
		errors.Is(err, services.ErrInvalidLogType),
		errors.Is(err, services.ErrInvalidFlowIntensity),
		errors.Is(err, services.ErrInvalidSymptom),
		errors.Is(err, services.ErrLifestyleOutOfRange):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		log.Error().Err(err).Uint("user_id", currentUserID(c)).Msg("log entry write failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to save log entry")
	}
}
