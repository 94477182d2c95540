package models

// NetworkSections is everything extracted from one ifconfig/ethtool log.
type NetworkSections struct {
	Interfaces     []InterfaceRecord   `json:"interfaces"`
	PacketSizes    PacketSizeHistogram `json:"packetSizes"`
	LinkStatistics LinkStatistics      `json:"linkStatistics"`
}

// NetworkReport is the response of an ethtool analysis.
type NetworkReport struct {
	AnalysisID string `json:"analysisId"`
	Digest     string `json:"digest"`
	NetworkSections
}
