package youtube

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var durationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// FormatDuration turns an ISO 8601 duration such as PT1H23M45S into
// "1h 23m 45s". Tokens that don't start with PT yield "Unknown".
func FormatDuration(duration string) string {
	matches := durationPattern.FindStringSubmatch(duration)
	if matches == nil {
		return "Unknown"
	}

	var parts []string
	for i, unit := range []string{"h", "m", "s"} {
		if matches[i+1] != "" {
			parts = append(parts, matches[i+1]+unit)
		}
	}

	if len(parts) == 0 {
		return "0s"
	}
	return strings.Join(parts, " ")
}

// FormatViews abbreviates large counters: 1500000 -> "1.5M", 5000 -> "5.0K".
func FormatViews(count uint64) string {
	switch {
	case count >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(count)/1_000_000)
	case count >= 1_000:
		return fmt.Sprintf("%.1fK", float64(count)/1_000)
	default:
		return strconv.FormatUint(count, 10)
	}
}
