package services

import (
	"errors"
	"strings"
	"time"
)

const (
	MinCycleLength  = 15
	MaxCycleLength  = 90
	MinPeriodLength = 1
	MaxPeriodLength = 14
)

var (
	ErrSettingsCycleLengthOutOfRange    = errors.New("settings cycle length out of range")
	ErrSettingsPeriodLengthOutOfRange   = errors.New("settings period length out of range")
	ErrSettingsPeriodLengthIncompatible = errors.New("settings period length incompatible with cycle length")
	ErrSettingsCycleStartDateInvalid    = errors.New("settings cycle start date invalid")
	ErrSettingsCycleEndDateInvalid      = errors.New("settings cycle end date invalid")
)

type CycleSettingsInput struct {
	CycleLength        int
	PeriodLength       int
	LastPeriodStartRaw string
	LastPeriodEndRaw   string
}

type CycleSettingsUpdate struct {
	CycleLength     int
	PeriodLength    int
	LastPeriodStart *time.Time
	LastPeriodEnd   *time.Time
}

func IsValidCycleLength(value int) bool {
	return value >= MinCycleLength && value <= MaxCycleLength
}

func IsValidPeriodLength(value int) bool {
	return value >= MinPeriodLength && value <= MaxPeriodLength
}

func ValidateCycleSettings(input CycleSettingsInput, now time.Time, location *time.Location) (CycleSettingsUpdate, error) {
	if !IsValidCycleLength(input.CycleLength) {
		return CycleSettingsUpdate{}, ErrSettingsCycleLengthOutOfRange
	}
	if !IsValidPeriodLength(input.PeriodLength) {
		return CycleSettingsUpdate{}, ErrSettingsPeriodLengthOutOfRange
	}
	if input.PeriodLength >= input.CycleLength {
		return CycleSettingsUpdate{}, ErrSettingsPeriodLengthIncompatible
	}

	update := CycleSettingsUpdate{
		CycleLength:  input.CycleLength,
		PeriodLength: input.PeriodLength,
	}
	today := DateAtLocation(now, location)

	start, err := parseOptionalDay(input.LastPeriodStartRaw, location)
	if err != nil || (start != nil && start.After(today)) {
		return CycleSettingsUpdate{}, ErrSettingsCycleStartDateInvalid
	}
	end, err := parseOptionalDay(input.LastPeriodEndRaw, location)
	if err != nil || (end != nil && (start == nil || end.Before(*start))) {
		return CycleSettingsUpdate{}, ErrSettingsCycleEndDateInvalid
	}

	update.LastPeriodStart = start
	update.LastPeriodEnd = end
	return update, nil
}

func parseOptionalDay(raw string, location *time.Location) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	day, err := ParseDay(raw, location)
	if err != nil {
		return nil, err
	}
	day = DateAtLocation(day, location)
	return &day, nil
}
