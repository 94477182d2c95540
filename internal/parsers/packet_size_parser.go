package parsers

import (
	"regexp"
	"strconv"

	"perflog-analytics/internal/models"
)

var (
	rxSizePattern = regexp.MustCompile(`^\s*rx_size_(\w+)(?:\.nic)?:\s*(\d+)`)
	txSizePattern = regexp.MustCompile(`^\s*tx_size_(\w+)(?:\.nic)?:\s*(\d+)`)
)

// ParsePacketSizes collects the rx_size_<label> and tx_size_<label> counters of an
// ethtool -S dump. A label seen twice keeps its first position and its last value.
func ParsePacketSizes(text string) models.PacketSizeHistogram {
	histogram := models.PacketSizeHistogram{
		RX: models.SizeBuckets{},
		TX: models.SizeBuckets{},
	}
	for _, line := range splitLines(text) {
		if label, count, ok := matchSizeCounter(rxSizePattern, line); ok {
			histogram.RX = histogram.RX.Set(label, count)
		}
		if label, count, ok := matchSizeCounter(txSizePattern, line); ok {
			histogram.TX = histogram.TX.Set(label, count)
		}
	}
	return histogram
}

func matchSizeCounter(pattern *regexp.Regexp, line string) (string, uint64, bool) {
	m := pattern.FindStringSubmatch(line)
	if m == nil {
		return "", 0, false
	}
	count, err := strconv.ParseUint(m[2], 10, 64)
	if err != nil {
		return "", 0, false
	}
	return m[1], count, true
}
