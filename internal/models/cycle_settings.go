package models

import "time"

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5
)

type CycleSettings struct {
	UserID              uint       `gorm:"primaryKey;autoIncrement:false" json:"-"`
	AverageCycleLength  int        `gorm:"not null;default:28" json:"average_cycle_length"`
	AveragePeriodLength int        `gorm:"not null;default:5" json:"average_period_length"`
	LastPeriodStart     *time.Time `gorm:"type:date" json:"last_period_start,omitempty"`
	LastPeriodEnd       *time.Time `gorm:"type:date" json:"last_period_end,omitempty"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func DefaultCycleSettings(userID uint) CycleSettings {
	return CycleSettings{
		UserID:              userID,
		AverageCycleLength:  DefaultCycleLength,
		AveragePeriodLength: DefaultPeriodLength,
	}
}

func (CycleSettings) TableName() string {
	return "cycle_settings"
}
