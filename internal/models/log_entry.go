package models

import (
	"time"

	"github.com/google/uuid"
)

type LogType string

const (
	LogTypePeriod  LogType = "period"
	LogTypeSymptom LogType = "symptom"
	LogTypeMood    LogType = "mood"
	LogTypeNote    LogType = "note"
	LogTypeOther   LogType = "other"
)

func ParseLogType(raw string) LogType {
	switch LogType(raw) {
	case LogTypePeriod, LogTypeSymptom, LogTypeMood, LogTypeNote:
		return LogType(raw)
	default:
		return LogTypeOther
	}
}

func (logType LogType) Known() bool {
	return logType != LogTypeOther && ParseLogType(string(logType)) == logType
}

type FlowIntensity string

const (
	FlowNone     FlowIntensity = ""
	FlowSpotting FlowIntensity = "spotting"
	FlowLight    FlowIntensity = "light"
	FlowMedium   FlowIntensity = "medium"
	FlowHeavy    FlowIntensity = "heavy"
	FlowUnknown  FlowIntensity = "unknown"
)

func ParseFlowIntensity(raw string) FlowIntensity {
	switch FlowIntensity(raw) {
	case FlowNone, FlowSpotting, FlowLight, FlowMedium, FlowHeavy:
		return FlowIntensity(raw)
	default:
		return FlowUnknown
	}
}

func (flow FlowIntensity) Known() bool {
	return flow != FlowUnknown && ParseFlowIntensity(string(flow)) == flow
}

// LogEntry is one user-recorded event for a calendar day. Several entries of
// different types may share a date.
type LogEntry struct {
	ID            uuid.UUID      `gorm:"type:text;primaryKey" json:"id"`
	UserID        uint           `gorm:"not null;index:idx_log_entries_user_date" json:"-"`
	Date          time.Time      `gorm:"type:date;not null;index:idx_log_entries_user_date" json:"date"`
	LogType       LogType        `gorm:"not null" json:"log_type"`
	FlowIntensity FlowIntensity  `gorm:"not null;default:''" json:"flow_intensity,omitempty"`
	Symptoms      []SymptomEntry `gorm:"serializer:json" json:"symptoms"`
	Moods         []Mood         `gorm:"serializer:json" json:"moods"`
	StressLevel   *int           `json:"stress_level,omitempty"`
	SleepQuality  *int           `json:"sleep_quality,omitempty"`
	SleepHours    *float64       `json:"sleep_hours,omitempty"`
	WaterIntake   *float64       `json:"water_intake,omitempty"`
	Notes         string         `json:"notes,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (entry LogEntry) IsPeriod() bool {
	return entry.LogType == LogTypePeriod
}

func (entry LogEntry) HasDate() bool {
	return !entry.Date.IsZero()
}

func (LogEntry) TableName() string {
	return "log_entries"
}
