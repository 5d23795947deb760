package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/terraincognita07/ovumcy-insights/internal/services"
)

type insightsResponse struct {
	services.CycleInsights
	Language string           `json:"language"`
	Labels   insightsLabelSet `json:"labels"`
}

// insightsLabelSet is the localized copy for the derived records.
type insightsLabelSet struct {
	Phase        string `json:"phase"`
	Confidence   string `json:"confidence,omitempty"`
	LateStatus   string `json:"late_status,omitempty"`
	Irregularity string `json:"irregularity,omitempty"`
}

func (handler *Handler) GetCycles(c *fiber.Ctx) error {
	cycles, stats, err := handler.insights.CyclesForUser(c.UserContext(), currentUserID(c))
	if err != nil {
		log.Error().Err(err).Uint("user_id", currentUserID(c)).Msg("load cycles failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to load cycles")
	}
	return c.JSON(fiber.Map{"cycles": cycles, "stats": stats})
}

func (handler *Handler) GetInsights(c *fiber.Ctx) error {
	today, ok := handler.referenceDay(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "date must be a YYYY-MM-DD date")
	}

	insights, err := handler.insights.BuildForUser(c.UserContext(), currentUserID(c), today)
	if err != nil {
		log.Error().Err(err).Uint("user_id", currentUserID(c)).Msg("build insights failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to build insights")
	}

	language := handler.currentLanguage(c)
	return c.JSON(insightsResponse{
		CycleInsights: insights,
		Language:      language,
		Labels:        handler.localizeInsights(language, insights),
	})
}

func (handler *Handler) GetInsightsContext(c *fiber.Ctx) error {
	today, ok := handler.referenceDay(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "date must be a YYYY-MM-DD date")
	}

	text, err := handler.insights.BuildContextForUser(c.UserContext(), currentUserID(c), today)
	if err != nil {
		log.Error().Err(err).Uint("user_id", currentUserID(c)).Msg("build insights context failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to build insights")
	}
	c.Type("txt", "utf-8")
	return c.SendString(text)
}

func (handler *Handler) localizeInsights(language string, insights services.CycleInsights) insightsLabelSet {
	labels := insightsLabelSet{
		Phase: handler.i18n.Localize(language, "phase."+insights.Phase.Phase, insights.Phase.Phase),
	}
	if prediction := insights.Prediction; prediction != nil {
		labels.Confidence = handler.i18n.Localize(language, "confidence."+string(prediction.Confidence), string(prediction.Confidence))
	}
	if late := insights.LateStatus; late != nil {
		labels.LateStatus = handler.i18n.Localize(language, late.MessageKey, late.Message)
	}
	if irregularity := insights.Irregularity; irregularity != nil {
		labels.Irregularity = handler.i18n.Localize(language, irregularity.MessageKey, irregularity.Message, irregularity.Range)
	}
	return labels
}
