package aggregators

import (
	"math"
	"sort"

	"perflog-analytics/internal/models"
)

// percentileRank is the percentile reported as P95 in BandwidthStatistics.
const percentileRank = 95

//go:generate mockgen -source=bandwidth_aggregator.go -destination=./mocks/bandwidth_aggregator_mock.go -package=mocks
type BandwidthAggregator interface {
	// Dimensions lists the distinct sockets, mcs and chs of samples.
	Dimensions(samples []models.BandwidthSample) models.BandwidthDimensions
	// Filter returns the samples matching filter, in their original order.
	Filter(samples []models.BandwidthSample, filter models.BandwidthFilter) []models.BandwidthSample
	// Statistics computes one row per (mc, ch) group of the filtered samples.
	Statistics(samples []models.BandwidthSample, filter models.BandwidthFilter) []models.BandwidthStatistics
}

type bandwidthAggregator struct{}

func NewBandwidthAggregator() BandwidthAggregator {
	return &bandwidthAggregator{}
}

func (a *bandwidthAggregator) Dimensions(samples []models.BandwidthSample) models.BandwidthDimensions {
	return DiscoverDimensions(samples)
}

func (a *bandwidthAggregator) Filter(samples []models.BandwidthSample, filter models.BandwidthFilter) []models.BandwidthSample {
	return FilterSamples(samples, filter)
}

func (a *bandwidthAggregator) Statistics(samples []models.BandwidthSample, filter models.BandwidthFilter) []models.BandwidthStatistics {
	return ComputeBandwidthStats(samples, filter)
}

// DiscoverDimensions returns the sorted distinct socket, mc and ch values of samples.
func DiscoverDimensions(samples []models.BandwidthSample) models.BandwidthDimensions {
	sockets := make(map[string]struct{})
	mcs := make(map[string]struct{})
	chs := make(map[string]struct{})
	for i := range samples {
		sockets[samples[i].Socket] = struct{}{}
		mcs[samples[i].Mc] = struct{}{}
		chs[samples[i].Ch] = struct{}{}
	}
	return models.BandwidthDimensions{
		Sockets: sortedKeys(sockets),
		Mcs:     sortedKeys(mcs),
		Chs:     sortedKeys(chs),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FilterSamples keeps the samples whose socket, mc and ch are all selected by filter.
func FilterSamples(samples []models.BandwidthSample, filter models.BandwidthFilter) []models.BandwidthSample {
	if filter.IsEmpty() {
		return append(make([]models.BandwidthSample, 0, len(samples)), samples...)
	}

	sockets := toSet(filter.Sockets)
	mcs := toSet(filter.Mcs)
	chs := toSet(filter.Chs)

	filtered := make([]models.BandwidthSample, 0, len(samples))
	for _, sample := range samples {
		if selected(sockets, sample.Socket) && selected(mcs, sample.Mc) && selected(chs, sample.Ch) {
			filtered = append(filtered, sample)
		}
	}
	return filtered
}

// toSet returns nil for an empty selection, which selects every value.
func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func selected(set map[string]struct{}, value string) bool {
	if set == nil {
		return true
	}
	_, ok := set[value]
	return ok
}

type mcChKey struct {
	mc string
	ch string
}

type metricSeries struct {
	read  []float64
	write []float64
	req   []float64
}

// ComputeBandwidthStats filters samples and summarizes every (mc, ch) group, merging all
// sockets of a group. Rows are ordered by mc, then ch. An empty selection yields no rows.
func ComputeBandwidthStats(samples []models.BandwidthSample, filter models.BandwidthFilter) []models.BandwidthStatistics {
	groups := make(map[mcChKey]*metricSeries)
	for _, sample := range FilterSamples(samples, filter) {
		key := mcChKey{mc: sample.Mc, ch: sample.Ch}
		series, ok := groups[key]
		if !ok {
			series = &metricSeries{}
			groups[key] = series
		}
		series.read = append(series.read, sample.Read)
		series.write = append(series.write, sample.Write)
		series.req = append(series.req, sample.Req)
	}

	keys := make([]mcChKey, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].mc != keys[j].mc {
			return keys[i].mc < keys[j].mc
		}
		return keys[i].ch < keys[j].ch
	})

	stats := make([]models.BandwidthStatistics, 0, len(keys))
	for _, key := range keys {
		series := groups[key]
		row := models.BandwidthStatistics{
			Mc:          key.mc,
			Ch:          key.ch,
			SampleCount: len(series.read),
		}
		row.MinRead, row.MaxRead, row.AvgRead, row.P95Read = summarize(series.read)
		row.MinWrite, row.MaxWrite, row.AvgWrite, row.P95Write = summarize(series.write)
		row.MinReq, row.MaxReq, row.AvgReq, row.P95Req = summarize(series.req)
		stats = append(stats, row)
	}
	return stats
}

// summarize returns min, max, mean and the 95th percentile of a non-empty series.
func summarize(values []float64) (minV, maxV, mean, p95 float64) {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range values {
		sum += v
	}
	return sorted[0], sorted[len(sorted)-1], sum / float64(len(sorted)), percentile(sorted, percentileRank)
}

// percentile interpolates linearly between the closest ranks of sorted at rank p/100*(n-1).
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	rank := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}
	fraction := rank - float64(lower)
	return sorted[lower] + (sorted[upper]-sorted[lower])*fraction
}
