package parsers

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"perflog-analytics/internal/models"
)

// McUtils bandwidth log shape:
//
//	03-14 10:25:RESULT
//	| Socket  | Mc | Ch |    Read     |    Write    |   Request   |
//	| socket0 |  0 |  0 |   12.50 G   |    6.25 G   |   20.10 G   |
//	|  Total  |    |    |   12.50 G   |    6.25 G   |   20.10 G   |
//	=================================================================
//
// Log collectors may prefix table lines with "<time> <process>:"; the prefix is dropped.
var (
	bandwidthHeaderPattern = regexp.MustCompile(`\| Socket  \| Mc \| Ch \|    Read     \|    Write    \|   Request   \|`)
	bandwidthRowPattern    = regexp.MustCompile(`^\|\s*(socket\d+|Total)\s*\|\s*(\d+)?\s*\|\s*(\d+)?\s*\|\s*([\d.]+) G\s*\|\s*([\d.]+) G\s*\|\s*([\d.]+) G\s*\|`)
	resultTimestampPattern = regexp.MustCompile(`^(\d{2}-\d{2} \d{2}:\d{2}):RESULT`)

	bandwidthPrefixedMarkers = []string{":| Socket  |", ":|  Total  |", ":| socket"}
)

const (
	resultTimestampLayout = "01-02 15:04"
	socketPrefix          = "socket"
)

// bandwidthLine is one log line after classification.
type bandwidthLine struct {
	timestamp *time.Time
	isHeader  bool
	row       []string
	endsTable bool
}

func classifyBandwidthLine(line string) bandwidthLine {
	for _, marker := range bandwidthPrefixedMarkers {
		if strings.Contains(line, marker) {
			line = line[strings.Index(line, "|"):]
			break
		}
	}

	var classified bandwidthLine
	if m := resultTimestampPattern.FindStringSubmatch(line); m != nil {
		if ts, err := time.Parse(resultTimestampLayout, m[1]); err == nil {
			classified.timestamp = &ts
		}
	}
	if bandwidthHeaderPattern.MatchString(line) {
		classified.isHeader = true
		return classified
	}
	classified.row = bandwidthRowPattern.FindStringSubmatch(line)
	classified.endsTable = strings.HasSuffix(strings.TrimSpace(line), "=")
	return classified
}

// bandwidthScanState is carried from line to line. The timestamp survives table
// boundaries; block only grows.
type bandwidthScanState struct {
	timestamp *time.Time
	inTable   bool
	block     int
}

func (s bandwidthScanState) next(line bandwidthLine, lineNumber int) (bandwidthScanState, *models.BandwidthSample) {
	if line.timestamp != nil {
		s.timestamp = line.timestamp
	}
	if line.isHeader {
		s.inTable = true
		s.block++
		return s, nil
	}
	if !s.inTable {
		return s, nil
	}

	var sample *models.BandwidthSample
	if line.row != nil && s.timestamp != nil {
		sample = newBandwidthSample(line.row, lineNumber, s.block, *s.timestamp)
	}
	if line.endsTable {
		s.inTable = false
	}
	return s, sample
}

// newBandwidthSample builds a sample from a row match, or returns nil when a bandwidth
// column is not a number.
func newBandwidthSample(row []string, lineNumber, block int, timestamp time.Time) *models.BandwidthSample {
	var values [3]float64
	for i, raw := range row[4:7] {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil
		}
		values[i] = v
	}

	sample := &models.BandwidthSample{
		LineNumber:  lineNumber,
		SampleBlock: block,
		Timestamp:   timestamp,
		Socket:      row[1],
		Mc:          row[2],
		Ch:          row[3],
		Read:        values[0],
		Write:       values[1],
		Req:         values[2],
	}
	if sample.IsTotal() {
		sample.Mc, sample.Ch = models.GroupTotal, models.GroupTotal
	}
	// A socket row without mc/ch is reported as a total, malformed or not.
	if sample.Mc == "" {
		sample.Mc = models.GroupTotal
	}
	if sample.Ch == "" {
		sample.Ch = models.GroupTotal
	}
	return sample
}

// ParseBandwidthLog extracts every bandwidth table row of a McUtils log, in line order,
// with SampleNumber and SocketNumber filled in. Rows seen before the first RESULT
// timestamp and lines that do not match the table format are skipped.
func ParseBandwidthLog(text string) []models.BandwidthSample {
	samples := make([]models.BandwidthSample, 0)
	state := bandwidthScanState{}
	for i, raw := range splitLines(text) {
		var sample *models.BandwidthSample
		state, sample = state.next(classifyBandwidthLine(raw), i+1)
		if sample != nil {
			samples = append(samples, *sample)
		}
	}

	numberSamples(samples)
	return samples
}

// numberSamples sets SampleNumber to the dense rank of SampleBlock within each
// (socket, mc, ch) group, and SocketNumber to the digits after "socket".
func numberSamples(samples []models.BandwidthSample) {
	blocksByGroup := make(map[models.ChannelKey][]int)
	for i := range samples {
		key := samples[i].ChannelKey()
		blocksByGroup[key] = append(blocksByGroup[key], samples[i].SampleBlock)
	}

	ranksByGroup := make(map[models.ChannelKey]map[int]int, len(blocksByGroup))
	for key, blocks := range blocksByGroup {
		sort.Ints(blocks)
		ranks := make(map[int]int, len(blocks))
		for _, block := range blocks {
			if _, seen := ranks[block]; !seen {
				ranks[block] = len(ranks) + 1
			}
		}
		ranksByGroup[key] = ranks
	}

	for i := range samples {
		samples[i].SampleNumber = ranksByGroup[samples[i].ChannelKey()][samples[i].SampleBlock]
		if suffix, ok := strings.CutPrefix(samples[i].Socket, socketPrefix); ok {
			samples[i].SocketNumber = &suffix
		}
	}
}
