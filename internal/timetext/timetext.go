// Package timetext converts between free-text durations ("2 days 3 hours")
// and second counts, and scales durations by a construction-speed bonus.
package timetext

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	secondsPerDay    = 86400
	secondsPerHour   = 3600
	secondsPerMinute = 60
)

var unitPatterns = []struct {
	re         *regexp.Regexp
	multiplier int
}{
	{regexp.MustCompile(`(\d+)\s*day`), secondsPerDay},
	{regexp.MustCompile(`(\d+)\s*hour`), secondsPerHour},
	{regexp.MustCompile(`(\d+)\s*minute`), secondsPerMinute},
}

// ParseSeconds extracts day/hour/minute components from free text and sums
// them into seconds. Units may appear in any order and each is optional;
// text with no recognizable component yields 0, never an error.
func ParseSeconds(text string) int {
	lower := strings.ToLower(text)
	total := 0
	for _, up := range unitPatterns {
		if m := up.re.FindStringSubmatch(lower); m != nil {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			total += n * up.multiplier
		}
	}
	return total
}

// FormatSeconds renders a second count as comma-joined day/hour/minute
// parts with correct plurals, e.g. "1 day, 3 hours". The sub-minute
// remainder is discarded, not rounded. Zero renders as "0 minutes".
func FormatSeconds(seconds int) string {
	days := seconds / secondsPerDay
	seconds %= secondsPerDay
	hours := seconds / secondsPerHour
	seconds %= secondsPerHour
	minutes := seconds / secondsPerMinute

	var parts []string
	if days > 0 {
		parts = append(parts, pluralize(days, "day"))
	}
	if hours > 0 {
		parts = append(parts, pluralize(hours, "hour"))
	}
	if minutes > 0 {
		parts = append(parts, pluralize(minutes, "minute"))
	}
	if len(parts) == 0 {
		return "0 minutes"
	}
	return strings.Join(parts, ", ")
}

// ScaleSeconds applies a percentage speed bonus: round(secs / (1+percent/100)).
// The formula is a no-op at percent=0 and inverts for negative values, so
// callers must skip the call entirely when percent <= 0.
func ScaleSeconds(seconds int, percent float64) int {
	return int(math.Round(float64(seconds) / (1 + percent/100)))
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
