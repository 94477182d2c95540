package models

// LinkCounterNames are the NIC counters collected into LinkStatistics.
var LinkCounterNames = []string{
	"rx_bytes",
	"tx_bytes",
	"rx_packets",
	"tx_packets",
	"rx_errors",
	"tx_errors",
	"rx_dropped",
	"tx_dropped",
	"rx_multicast",
	"tx_multicast",
	"rx_broadcast",
	"tx_broadcast",
}

// LinkStatistics maps a counter name to its value. Counters missing from the log are
// missing from the map; they are never reported as zero.
type LinkStatistics map[string]uint64
