package services

import (
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/ovumcy-insights/internal/models"
)

const (
	MaxLogNotesLength = 2000
	minScaleValue     = 1
	maxScaleValue     = 5
	maxSleepHours     = 24
)

var (
	ErrInvalidLogDate       = errors.New("invalid log date")
	ErrInvalidLogType       = errors.New("invalid log type")
	ErrInvalidFlowIntensity = errors.New("invalid flow intensity")
	ErrInvalidSymptom       = errors.New("invalid symptom")
	ErrLifestyleOutOfRange  = errors.New("lifestyle value out of range")
)

type LogEntryInput struct {
	Date          time.Time
	LogType       string
	FlowIntensity string
	Symptoms      []string
	Moods         []string
	StressLevel   *int
	SleepQuality  *int
	SleepHours    *float64
	WaterIntake   *float64
	Notes         string
}

// NormalizeLogEntryInput turns raw input into a storable entry. Flow is only
// kept on period entries; symptom strings may use the "name:severity" form.
func NormalizeLogEntryInput(userID uint, input LogEntryInput, location *time.Location) (models.LogEntry, error) {
	if input.Date.IsZero() {
		return models.LogEntry{}, ErrInvalidLogDate
	}

	logType := models.ParseLogType(strings.ToLower(strings.TrimSpace(input.LogType)))
	if !logType.Known() {
		return models.LogEntry{}, ErrInvalidLogType
	}

	flow := models.ParseFlowIntensity(strings.ToLower(strings.TrimSpace(input.FlowIntensity)))
	if !flow.Known() {
		return models.LogEntry{}, ErrInvalidFlowIntensity
	}
	if logType != models.LogTypePeriod {
		flow = models.FlowNone
	}

	symptoms := make([]models.SymptomEntry, 0, len(input.Symptoms))
	seenSymptoms := make(map[models.SymptomID]struct{}, len(input.Symptoms))
	for _, raw := range input.Symptoms {
		symptom, ok := models.ParseSymptom(raw)
		if !ok {
			return models.LogEntry{}, ErrInvalidSymptom
		}
		if _, duplicate := seenSymptoms[symptom.ID]; duplicate {
			continue
		}
		seenSymptoms[symptom.ID] = struct{}{}
		symptoms = append(symptoms, symptom)
	}

	moods := make([]models.Mood, 0, len(input.Moods))
	seenMoods := make(map[models.Mood]struct{}, len(input.Moods))
	for _, raw := range input.Moods {
		mood := models.ParseMood(raw)
		if _, duplicate := seenMoods[mood]; duplicate {
			continue
		}
		seenMoods[mood] = struct{}{}
		moods = append(moods, mood)
	}

	if !intInRange(input.StressLevel, minScaleValue, maxScaleValue) || !intInRange(input.SleepQuality, minScaleValue, maxScaleValue) {
		return models.LogEntry{}, ErrLifestyleOutOfRange
	}
	if input.SleepHours != nil && (*input.SleepHours < 0 || *input.SleepHours > maxSleepHours) {
		return models.LogEntry{}, ErrLifestyleOutOfRange
	}
	if input.WaterIntake != nil && *input.WaterIntake < 0 {
		return models.LogEntry{}, ErrLifestyleOutOfRange
	}

	return models.LogEntry{
		UserID:        userID,
		Date:          DateAtLocation(input.Date, location),
		LogType:       logType,
		FlowIntensity: flow,
		Symptoms:      symptoms,
		Moods:         moods,
		StressLevel:   input.StressLevel,
		SleepQuality:  input.SleepQuality,
		SleepHours:    input.SleepHours,
		WaterIntake:   input.WaterIntake,
		Notes:         TrimLogNotes(strings.TrimSpace(input.Notes)),
	}, nil
}

// TrimLogNotes caps notes at MaxLogNotesLength characters without splitting
// a multibyte rune.
func TrimLogNotes(value string) string {
	count := 0
	for index := range value {
		if count == MaxLogNotesLength {
			return value[:index]
		}
		count++
	}
	return value
}

func intInRange(value *int, minValue int, maxValue int) bool {
	return value == nil || (*value >= minValue && *value <= maxValue)
}
