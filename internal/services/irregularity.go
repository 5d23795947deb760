package services

import (
	"fmt"
	"math"
)

const (
	irregularityWindow       = 3
	irregularStdDevThreshold = 4.0
	irregularRangeThreshold  = 8
)

// Irregularity is a short-window signal over the last three completed cycles,
// independent of the prediction confidence tier.
type Irregularity struct {
	IsIrregular bool    `json:"is_irregular"`
	Lengths     []int   `json:"lengths"`
	Mean        float64 `json:"mean"`
	Variance    float64 `json:"variance"`
	StdDev      float64 `json:"std_dev"`
	Range       int     `json:"range"`
	MessageKey  string  `json:"message_key"`
	Message     string  `json:"message"`
}

func DetectIrregularity(cycles []Cycle) *Irregularity {
	lengths := completedCycleLengths(cycles)
	if len(lengths) < irregularityWindow {
		return nil
	}

	recent := append([]int{}, tailInts(lengths, irregularityWindow)...)
	mean, variance := meanAndPopulationVariance(recent)
	stdDev := math.Sqrt(variance)
	minLength, maxLength := minMaxInts(recent)
	spread := maxLength - minLength

	result := &Irregularity{
		IsIrregular: stdDev > irregularStdDevThreshold || spread > irregularRangeThreshold,
		Lengths:     recent,
		Mean:        roundToTenth(mean),
		Variance:    roundToTenth(variance),
		StdDev:      roundToTenth(stdDev),
		Range:       spread,
	}
	if result.IsIrregular {
		result.MessageKey = "irregularity.irregular"
		result.Message = fmt.Sprintf("Your last three cycles swung by %d days. Cycles vary for many reasons; tracking a few more will make the pattern clearer.", spread)
	} else {
		result.MessageKey = "irregularity.regular"
		result.Message = fmt.Sprintf("Your last three cycles stayed within %d days of each other.", spread)
	}
	return result
}
