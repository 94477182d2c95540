package models

import "time"

// GroupTotal is the socket/mc/ch value of rows that aggregate over a whole socket or system.
const GroupTotal = "Total"

// BandwidthSample is one memory-controller bandwidth reading for one (socket, mc, ch)
// triple at one sampled instant, as printed by the McUtils bandwidth monitor.
//
// Read, Write and Req are in GB/s. Timestamp carries month, day, hour and minute only;
// the log does not print a year.
//
// Example JSON:
//
//	{
//	  "lineNumber": 42,
//	  "timestamp": "0000-03-14T10:25:00Z",
//	  "socket": "socket0",
//	  "mc": "1",
//	  "ch": "0",
//	  "read": 12.5,
//	  "write": 6.25,
//	  "req": 20.1,
//	  "sampleNumber": 3,
//	  "socketNumber": "0"
//	}
type BandwidthSample struct {
	LineNumber int `json:"lineNumber"`
	// SampleBlock is the 1-based index of the table the row was read from. It only feeds
	// SampleNumber and is not part of the published record.
	SampleBlock  int       `json:"-"`
	Timestamp    time.Time `json:"timestamp"`
	Socket       string    `json:"socket"`
	Mc           string    `json:"mc"`
	Ch           string    `json:"ch"`
	Read         float64   `json:"read"`
	Write        float64   `json:"write"`
	Req          float64   `json:"req"`
	SampleNumber int       `json:"sampleNumber"`
	SocketNumber *string   `json:"socketNumber"`
}

// ChannelKey identifies the (socket, mc, ch) group of a sample.
type ChannelKey struct {
	Socket string
	Mc     string
	Ch     string
}

func (s *BandwidthSample) ChannelKey() ChannelKey {
	return ChannelKey{Socket: s.Socket, Mc: s.Mc, Ch: s.Ch}
}

// IsTotal reports whether the sample is a socket or system total row.
func (s *BandwidthSample) IsTotal() bool {
	return s.Socket == GroupTotal
}
