package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type logEntryPayload struct {
	Date          string   `json:"date" validate:"required,datetime=2006-01-02"`
	LogType       string   `json:"log_type" validate:"required,oneof=period symptom mood note"`
	FlowIntensity string   `json:"flow_intensity" validate:"omitempty,oneof=spotting light medium heavy"`
	Symptoms      []string `json:"symptoms" validate:"max=32,dive,required,max=64"`
	Moods         []string `json:"moods" validate:"max=16,dive,required,max=32"`
	StressLevel   *int     `json:"stress_level" validate:"omitempty,min=1,max=5"`
	SleepQuality  *int     `json:"sleep_quality" validate:"omitempty,min=1,max=5"`
	SleepHours    *float64 `json:"sleep_hours" validate:"omitempty,gte=0,lte=24"`
	WaterIntake   *float64 `json:"water_intake" validate:"omitempty,gte=0"`
	Notes         string   `json:"notes"`
}

type cycleSettingsPayload struct {
	CycleLength     int    `json:"average_cycle_length" validate:"required"`
	PeriodLength    int    `json:"average_period_length" validate:"required"`
	LastPeriodStart string `json:"last_period_start" validate:"omitempty,datetime=2006-01-02"`
	LastPeriodEnd   string `json:"last_period_end" validate:"omitempty,datetime=2006-01-02"`
}

func newPayloadValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

// validationMessage turns the first failed rule into a short client-facing
// message such as "log_type must be one of: period symptom mood note".
func validationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return "invalid payload"
	}

	fieldErr := validationErrors[0]
	field := fieldErr.Field()
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "datetime":
		return fmt.Sprintf("%s must be a YYYY-MM-DD date", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fieldErr.Param())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fieldErr.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fieldErr.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
