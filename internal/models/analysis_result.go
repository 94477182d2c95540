package models

import "time"

// AnalysisResult is the filter-independent outcome of parsing one log, stored under
// its content digest so that re-uploads of the same bytes skip parsing.
//
// Exactly one of Samples (LogKindMcUtils) or Network (LogKindEthtool) is meaningful.
//
// Example JSON:
//
//	{
//	  "kind": "ethtool",
//	  "digest": "9f86d081884c7d65",
//	  "analysisId": "01ARZ3NDEKTSV4RRFFQ69G5FAV",
//	  "createdAt": "2025-12-28T18:03:00Z",
//	  "network": {
//	    "interfaces": [{"port": "eth0", "mtu": 1500, "ip": "10.0.0.2"}],
//	    "packetSizes": {"rx": [{"label": "64", "count": 20}], "tx": []},
//	    "linkStatistics": {"rx_bytes": 12345}
//	  }
//	}
type AnalysisResult struct {
	Kind       LogKind           `json:"kind"`
	Digest     string            `json:"digest"`
	AnalysisID string            `json:"analysisId"`
	CreatedAt  time.Time         `json:"createdAt"`
	Samples    []BandwidthSample `json:"samples,omitempty"`
	Network    *NetworkSections  `json:"network,omitempty"`
}
