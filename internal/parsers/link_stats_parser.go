package parsers

import (
	"regexp"
	"strconv"
	"strings"

	"perflog-analytics/internal/models"
)

var linkCounterPatterns = func() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(models.LinkCounterNames))
	for _, name := range models.LinkCounterNames {
		patterns[name] = regexp.MustCompile(`^` + regexp.QuoteMeta(name) + `:\s*(\d+)`)
	}
	return patterns
}()

// ParseLinkStats returns the NIC-wide counters named in models.LinkCounterNames. When a
// counter appears more than once the last occurrence wins.
func ParseLinkStats(text string) models.LinkStatistics {
	stats := make(models.LinkStatistics)
	for _, line := range splitLines(text) {
		trimmed := strings.TrimSpace(line)
		for _, name := range models.LinkCounterNames {
			if !strings.HasPrefix(trimmed, name+":") {
				continue
			}
			m := linkCounterPatterns[name].FindStringSubmatch(trimmed)
			if m == nil {
				continue
			}
			if value, err := strconv.ParseUint(m[1], 10, 64); err == nil {
				stats[name] = value
			}
		}
	}
	return stats
}
