package services

import (
	"time"

	"github.com/terraincognita07/ovumcy-insights/internal/models"
)

type LateSeverity string

const (
	LateSeverityNormal   LateSeverity = "normal"
	LateSeverityMild     LateSeverity = "mild"
	LateSeverityModerate LateSeverity = "moderate"
	LateSeverityHigh     LateSeverity = "high"
)

// Rank orders severities so callers can compare tiers.
func (severity LateSeverity) Rank() int {
	switch severity {
	case LateSeverityNormal:
		return 1
	case LateSeverityMild:
		return 2
	case LateSeverityModerate:
		return 3
	case LateSeverityHigh:
		return 4
	default:
		return 0
	}
}

type LateStatus struct {
	DaysLate   int          `json:"days_late"`
	Severity   LateSeverity `json:"severity"`
	MessageKey string       `json:"message_key"`
	Message    string       `json:"message"`
}

type lateTier struct {
	maxDays    int
	severity   LateSeverity
	messageKey string
	message    string
}

// lateTiers are checked in order; the last tier has no upper bound.
var lateTiers = []lateTier{
	{
		maxDays:    3,
		severity:   LateSeverityNormal,
		messageKey: "late.normal",
		message:    "Your period is a few days later than predicted. Small shifts like this are very common and usually nothing to worry about.",
	},
	{
		maxDays:    7,
		severity:   LateSeverityMild,
		messageKey: "late.mild",
		message:    "Your period is several days later than predicted. Stress, changes in sleep or travel often shift a cycle by a few days.",
	},
	{
		maxDays:    14,
		severity:   LateSeverityModerate,
		messageKey: "late.moderate",
		message:    "Your period is more than a week later than predicted. If you are sexually active, a home pregnancy test can help rule that out. Illness and stress can also delay a cycle.",
	},
	{
		maxDays:    0,
		severity:   LateSeverityHigh,
		messageKey: "late.high",
		message:    "Your period is more than two weeks later than predicted. It may be worth checking in with a healthcare provider to talk it through.",
	},
}

// ClassifyLatePeriod returns nil unless a user-declared period start exists
// and today is past the predicted date.
func ClassifyLatePeriod(prediction *Prediction, settings *models.CycleSettings, today time.Time) *LateStatus {
	if prediction == nil || settings == nil || settings.LastPeriodStart == nil || settings.LastPeriodStart.IsZero() {
		return nil
	}

	daysLate := daysBetween(prediction.PredictedDate, today)
	if daysLate <= 0 {
		return nil
	}

	for _, tier := range lateTiers {
		if tier.maxDays == 0 || daysLate <= tier.maxDays {
			return &LateStatus{
				DaysLate:   daysLate,
				Severity:   tier.severity,
				MessageKey: tier.messageKey,
				Message:    tier.message,
			}
		}
	}
	return nil
}
