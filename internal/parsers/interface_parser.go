package parsers

import (
	"regexp"
	"strconv"
	"strings"

	"perflog-analytics/internal/models"
)

var interfaceHeaderPattern = regexp.MustCompile(`^\w[\w\-]+: flags=`)

var (
	inetPattern         = regexp.MustCompile(`inet ([\d\.]+)`)
	etherPattern        = regexp.MustCompile(`ether ([\da-f:]+)`)
	mtuPattern          = regexp.MustCompile(`mtu (\d+)`)
	rxPacketsPattern    = regexp.MustCompile(`RX packets (\d+)\s+bytes (\d+)`)
	txPacketsPattern    = regexp.MustCompile(`TX packets (\d+)\s+bytes (\d+)`)
	rxErrorsPattern     = regexp.MustCompile(`RX errors (\d+)`)
	txErrorsPattern     = regexp.MustCompile(`TX errors (\d+)`)
	speedPattern        = regexp.MustCompile(`Speed:\s*([\w/]+)`)
	duplexPattern       = regexp.MustCompile(`Duplex:\s*(\w+)`)
	linkDetectedPattern = regexp.MustCompile(`Link detected:\s*(\w+)`)
)

// interfaceProbe fills one or more fields of a record from a matching line. A field that
// is already set is left alone, so the first matching line of a block wins.
type interfaceProbe struct {
	pattern *regexp.Regexp
	apply   func(record *models.InterfaceRecord, match []string)
}

var interfaceProbes = []interfaceProbe{
	{inetPattern, func(r *models.InterfaceRecord, m []string) { setString(&r.IP, m[1]) }},
	{etherPattern, func(r *models.InterfaceRecord, m []string) { setString(&r.MAC, m[1]) }},
	{mtuPattern, func(r *models.InterfaceRecord, m []string) { setUint(&r.MTU, m[1]) }},
	{rxPacketsPattern, func(r *models.InterfaceRecord, m []string) {
		if r.RxPackets == nil && r.RxBytes == nil {
			setUint(&r.RxPackets, m[1])
			setUint(&r.RxBytes, m[2])
		}
	}},
	{txPacketsPattern, func(r *models.InterfaceRecord, m []string) {
		if r.TxPackets == nil && r.TxBytes == nil {
			setUint(&r.TxPackets, m[1])
			setUint(&r.TxBytes, m[2])
		}
	}},
	{rxErrorsPattern, func(r *models.InterfaceRecord, m []string) { setUint(&r.RxErrors, m[1]) }},
	{txErrorsPattern, func(r *models.InterfaceRecord, m []string) { setUint(&r.TxErrors, m[1]) }},
	{speedPattern, func(r *models.InterfaceRecord, m []string) { setString(&r.Speed, m[1]) }},
	{duplexPattern, func(r *models.InterfaceRecord, m []string) { setString(&r.Duplex, m[1]) }},
	{linkDetectedPattern, func(r *models.InterfaceRecord, m []string) { setString(&r.LinkDetected, m[1]) }},
}

func setString(dst **string, value string) {
	if *dst == nil {
		*dst = &value
	}
}

// setUint leaves dst untouched when value overflows uint64.
func setUint(dst **uint64, value string) {
	if *dst != nil {
		return
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return
	}
	*dst = &n
}

// splitInterfaceBlocks cuts text right before every interface header line
// ("eth0: flags=..."). Text ahead of the first header forms the first block.
func splitInterfaceBlocks(text string) [][]string {
	var blocks [][]string
	var current []string
	for _, line := range splitLines(text) {
		if interfaceHeaderPattern.MatchString(line) && len(current) > 0 {
			blocks = append(blocks, current)
			current = nil
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

// trimBlock drops surrounding blank lines and the indentation of the first line.
func trimBlock(lines []string) []string {
	trimmed := strings.TrimSpace(strings.Join(lines, "\n"))
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

func parseInterfaceBlock(lines []string) (models.InterfaceRecord, bool) {
	lines = trimBlock(lines)
	if len(lines) == 0 {
		return models.InterfaceRecord{}, false
	}
	name, _, found := strings.Cut(lines[0], ":")
	if !found {
		return models.InterfaceRecord{}, false
	}

	record := models.InterfaceRecord{Port: name}
	for _, line := range lines {
		for _, probe := range interfaceProbes {
			if m := probe.pattern.FindStringSubmatch(line); m != nil {
				probe.apply(&record, m)
			}
		}
	}
	return record, true
}

// ParseInterfaces returns one record per interface block of an ifconfig/ethtool log,
// in log order.
func ParseInterfaces(text string) []models.InterfaceRecord {
	records := make([]models.InterfaceRecord, 0)
	for _, block := range splitInterfaceBlocks(text) {
		if record, ok := parseInterfaceBlock(block); ok {
			records = append(records, record)
		}
	}
	return records
}
