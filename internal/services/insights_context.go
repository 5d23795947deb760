package services

import (
	"fmt"
	"strings"
)

// FormatInsightsContext flattens insights into plain text for the chat
// assistant. Only derived figures are included, never raw log rows.
func FormatInsightsContext(insights CycleInsights) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "Reference date: %s\n", FormatDay(insights.ReferenceDate))
	fmt.Fprintf(&builder, "Tracked cycles: %d (completed: %d)\n", len(insights.Cycles), insights.Stats.Count)

	stats := insights.Stats
	if stats.Avg != nil {
		fmt.Fprintf(&builder, "Average cycle length: %.1f days (std dev %.1f, min %d, max %d)\n",
			*stats.Avg, derefFloat(stats.StdDev), derefInt(stats.Min), derefInt(stats.Max))
		fmt.Fprintf(&builder, "Recent cycle lengths: %s\n", joinInts(stats.Last3))
	} else {
		builder.WriteString("Average cycle length: not enough completed cycles yet\n")
	}
	if stats.AvgPeriodLength != nil {
		fmt.Fprintf(&builder, "Average period length: %.1f days\n", *stats.AvgPeriodLength)
	}

	if insights.Phase.Phase != PhaseUnknown {
		fmt.Fprintf(&builder, "Current cycle day: %d (%s phase)\n", insights.Phase.CurrentCycleDay, insights.Phase.Phase)
	}

	if prediction := insights.Prediction; prediction != nil {
		fmt.Fprintf(&builder, "Next period predicted: %s (range %s to %s, %s confidence, based on %d cycles)\n",
			FormatDay(prediction.PredictedDate),
			FormatDay(prediction.RangeStart),
			FormatDay(prediction.RangeEnd),
			prediction.Confidence,
			prediction.CyclesAnalyzed,
		)
	} else {
		builder.WriteString("Next period predicted: no period logged yet\n")
	}

	if late := insights.LateStatus; late != nil {
		fmt.Fprintf(&builder, "Period late by %d days (%s): %s\n", late.DaysLate, late.Severity, late.Message)
	}
	if irregularity := insights.Irregularity; irregularity != nil {
		fmt.Fprintf(&builder, "Last three cycles: %s, range %d days, irregular: %t\n",
			joinInts(irregularity.Lengths), irregularity.Range, irregularity.IsIrregular)
	}
	if window := insights.FertileWindow; window != nil {
		fmt.Fprintf(&builder, "Estimated fertile window: %s to %s (ovulation %s, fertile today: %t)\n",
			FormatDay(window.FertileStart), FormatDay(window.FertileEnd), FormatDay(window.Ovulation), window.IsFertileToday)
	}

	if len(insights.SymptomPatterns) > 0 {
		builder.WriteString("Symptom timing:\n")
		for _, pattern := range insights.SymptomPatterns {
			fmt.Fprintf(&builder, "- %s: %d times, usually cycle days %d-%d (average day %.1f)\n",
				pattern.Symptom, pattern.Count, pattern.TypicalStart, pattern.TypicalEnd, pattern.AvgDay)
		}
	}

	lifestyle := insights.Lifestyle
	if lifestyle.DaysLogged > 0 {
		fmt.Fprintf(&builder, "Lifestyle (last %d logged days):", lifestyle.DaysLogged)
		appendMetric(&builder, "stress", lifestyle.AvgStress, "/5")
		appendMetric(&builder, "sleep quality", lifestyle.AvgSleepQuality, "/5")
		appendMetric(&builder, "sleep", lifestyle.AvgSleepHours, "h")
		appendMetric(&builder, "water", lifestyle.AvgWaterIntake, "")
		builder.WriteString("\n")
		if len(lifestyle.TopMoods) > 0 {
			moods := make([]string, 0, len(lifestyle.TopMoods))
			for _, mood := range lifestyle.TopMoods {
				moods = append(moods, fmt.Sprintf("%s (%d)", mood.Mood, mood.Count))
			}
			fmt.Fprintf(&builder, "Frequent moods: %s\n", strings.Join(moods, ", "))
		}
	}

	return builder.String()
}

func appendMetric(builder *strings.Builder, label string, value *float64, unit string) {
	if value == nil {
		return
	}
	fmt.Fprintf(builder, " %s %.1f%s", label, *value, unit)
}

func joinInts(values []int) string {
	parts := make([]string, 0, len(values))
	for _, value := range values {
		parts = append(parts, fmt.Sprintf("%d", value))
	}
	return strings.Join(parts, ", ")
}

func derefFloat(value *float64) float64 {
	if value == nil {
		return 0
	}
	return *value
}

func derefInt(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}
