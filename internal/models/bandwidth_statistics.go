package models

// BandwidthStatistics summarizes every sample of one (mc, ch) group, across all sockets
// that survived the filter. All figures are in GB/s.
type BandwidthStatistics struct {
	Mc          string `json:"mc"`
	Ch          string `json:"ch"`
	SampleCount int    `json:"sampleCount"`

	MinRead float64 `json:"minRead"`
	MaxRead float64 `json:"maxRead"`
	AvgRead float64 `json:"avgRead"`
	P95Read float64 `json:"p95Read"`

	MinWrite float64 `json:"minWrite"`
	MaxWrite float64 `json:"maxWrite"`
	AvgWrite float64 `json:"avgWrite"`
	P95Write float64 `json:"p95Write"`

	MinReq float64 `json:"minReq"`
	MaxReq float64 `json:"maxReq"`
	AvgReq float64 `json:"avgReq"`
	P95Req float64 `json:"p95Req"`
}
