package models

// BandwidthFilter selects samples by socket, mc and ch. A dimension with no values
// selects everything; a sample is kept when it matches all three dimensions.
type BandwidthFilter struct {
	Sockets []string `json:"sockets" validate:"dive,required,max=64,dimension"`
	Mcs     []string `json:"mcs" validate:"dive,required,max=64,dimension"`
	Chs     []string `json:"chs" validate:"dive,required,max=64,dimension"`
}

func (f BandwidthFilter) IsEmpty() bool {
	return len(f.Sockets) == 0 && len(f.Mcs) == 0 && len(f.Chs) == 0
}

// BandwidthDimensions lists the distinct, sorted values of each filter dimension.
type BandwidthDimensions struct {
	Sockets []string `json:"sockets"`
	Mcs     []string `json:"mcs"`
	Chs     []string `json:"chs"`
}

// BandwidthReport is the response of a McUtils analysis.
type BandwidthReport struct {
	AnalysisID string                `json:"analysisId"`
	Digest     string                `json:"digest"`
	Dimensions BandwidthDimensions   `json:"dimensions"`
	Filter     BandwidthFilter       `json:"filter"`
	Samples    []BandwidthSample     `json:"samples"`
	Statistics []BandwidthStatistics `json:"statistics"`
}
