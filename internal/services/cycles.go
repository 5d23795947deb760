package services

import (
	"sort"
	"time"

	"github.com/terraincognita07/ovumcy-insights/internal/models"
)

const (
	// DefaultMergeGapDays is the largest distance between two period days
	// that still belong to the same bleeding run.
	DefaultMergeGapDays = 2
	// DefaultMaxSymptomCycleDay bounds the cycle day a symptom may be
	// attributed to.
	DefaultMaxSymptomCycleDay = 40
)

// Cycle is a contiguous run of period days. CycleLength stays nil until the
// next cycle has started.
type Cycle struct {
	Index        int       `json:"index"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	PeriodLength int       `json:"period_length"`
	CycleLength  *int      `json:"cycle_length"`
}

func (cycle Cycle) Completed() bool {
	return cycle.CycleLength != nil
}

func BuildCycles(logs []models.LogEntry, mergeGapDays int) []Cycle {
	if mergeGapDays <= 0 {
		mergeGapDays = DefaultMergeGapDays
	}

	periodDays := periodDates(logs)
	if len(periodDays) == 0 {
		return []Cycle{}
	}

	groups := make([][]time.Time, 0)
	current := []time.Time{periodDays[0]}
	for _, day := range periodDays[1:] {
		if daysBetween(current[len(current)-1], day) <= mergeGapDays {
			current = append(current, day)
			continue
		}
		groups = append(groups, current)
		current = []time.Time{day}
	}
	groups = append(groups, current)

	cycles := make([]Cycle, 0, len(groups))
	for index, group := range groups {
		start := group[0]
		end := group[len(group)-1]
		cycle := Cycle{
			Index:        index + 1,
			Start:        start,
			End:          end,
			PeriodLength: daysBetween(start, end) + 1,
		}
		if index+1 < len(groups) {
			length := daysBetween(start, groups[index+1][0])
			cycle.CycleLength = &length
		}
		cycles = append(cycles, cycle)
	}
	return cycles
}

// periodDates returns the sorted calendar days carrying a period log. Rows
// without a date are skipped and duplicate days collapse into one.
func periodDates(logs []models.LogEntry) []time.Time {
	seen := make(map[time.Time]struct{}, len(logs))
	days := make([]time.Time, 0, len(logs))
	for _, entry := range logs {
		if !entry.IsPeriod() || !entry.HasDate() {
			continue
		}
		day := calendarDay(entry.Date)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})
	return days
}

func completedCycleLengths(cycles []Cycle) []int {
	lengths := make([]int, 0, len(cycles))
	for _, cycle := range sortedCycles(cycles) {
		if cycle.CycleLength != nil {
			lengths = append(lengths, *cycle.CycleLength)
		}
	}
	return lengths
}

// sortedCycles returns a chronological copy; callers may hand cycles over in
// any order.
func sortedCycles(cycles []Cycle) []Cycle {
	sorted := make([]Cycle, len(cycles))
	copy(sorted, cycles)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})
	return sorted
}

func latestCycle(cycles []Cycle) (Cycle, bool) {
	if len(cycles) == 0 {
		return Cycle{}, false
	}
	sorted := sortedCycles(cycles)
	return sorted[len(sorted)-1], true
}

func tailInts(values []int, n int) []int {
	if len(values) <= n {
		return values
	}
	return values[len(values)-n:]
}
