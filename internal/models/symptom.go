package models

import "strings"

type SymptomID string

const (
	SymptomCramps           SymptomID = "cramps"
	SymptomHeadache         SymptomID = "headache"
	SymptomBloating         SymptomID = "bloating"
	SymptomFatigue          SymptomID = "fatigue"
	SymptomBreastTenderness SymptomID = "breast_tenderness"
	SymptomAcne             SymptomID = "acne"
	SymptomBackPain         SymptomID = "back_pain"
	SymptomNausea           SymptomID = "nausea"
	SymptomSpotting         SymptomID = "spotting"
	SymptomIrritability     SymptomID = "irritability"
	SymptomInsomnia         SymptomID = "insomnia"
	SymptomFoodCravings     SymptomID = "food_cravings"
	SymptomDiarrhea         SymptomID = "diarrhea"
	SymptomConstipation     SymptomID = "constipation"
	SymptomMoodSwings       SymptomID = "mood_swings"
)

var builtinSymptoms = map[SymptomID]struct{}{
	SymptomCramps:           {},
	SymptomHeadache:         {},
	SymptomBloating:         {},
	SymptomFatigue:          {},
	SymptomBreastTenderness: {},
	SymptomAcne:             {},
	SymptomBackPain:         {},
	SymptomNausea:           {},
	SymptomSpotting:         {},
	SymptomIrritability:     {},
	SymptomInsomnia:         {},
	SymptomFoodCravings:     {},
	SymptomDiarrhea:         {},
	SymptomConstipation:     {},
	SymptomMoodSwings:       {},
}

// Known reports whether the identifier is one of the built-in symptoms.
// Unknown identifiers are still kept and analysed as custom symptoms.
func (id SymptomID) Known() bool {
	_, ok := builtinSymptoms[id]
	return ok
}

func BuiltinSymptomIDs() []SymptomID {
	return []SymptomID{
		SymptomCramps, SymptomHeadache, SymptomBloating, SymptomFatigue,
		SymptomBreastTenderness, SymptomAcne, SymptomBackPain, SymptomNausea,
		SymptomSpotting, SymptomIrritability, SymptomInsomnia, SymptomFoodCravings,
		SymptomDiarrhea, SymptomConstipation, SymptomMoodSwings,
	}
}

type Severity string

const (
	SeverityNone     Severity = ""
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
	SeverityOther    Severity = "other"
)

func ParseSeverity(raw string) Severity {
	switch Severity(strings.ToLower(strings.TrimSpace(raw))) {
	case SeverityNone:
		return SeverityNone
	case SeverityMild, "1", "low":
		return SeverityMild
	case SeverityModerate, "2", "medium":
		return SeverityModerate
	case SeveritySevere, "3", "high":
		return SeveritySevere
	default:
		return SeverityOther
	}
}

type SymptomEntry struct {
	ID       SymptomID `json:"id"`
	Severity Severity  `json:"severity,omitempty"`
}

// ParseSymptom reads the "name" or "name:severity" form.
func ParseSymptom(raw string) (SymptomEntry, bool) {
	name, severity, hasSeverity := strings.Cut(strings.TrimSpace(raw), ":")
	id := NormalizeSymptomID(name)
	if id == "" {
		return SymptomEntry{}, false
	}
	entry := SymptomEntry{ID: id}
	if hasSeverity {
		entry.Severity = ParseSeverity(severity)
	}
	return entry, true
}

func NormalizeSymptomID(raw string) SymptomID {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.Join(strings.Fields(normalized), "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")
	return SymptomID(normalized)
}

func (entry SymptomEntry) String() string {
	if entry.Severity == SeverityNone {
		return string(entry.ID)
	}
	return string(entry.ID) + ":" + string(entry.Severity)
}
