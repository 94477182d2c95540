package models

// SizeBucket is the observed packet count of one size bucket (e.g. "64", "128_255", "jumbo").
type SizeBucket struct {
	Label string `json:"label"`
	Count uint64 `json:"count"`
}

// SizeBuckets is a label -> count mapping kept in order of first appearance.
type SizeBuckets []SizeBucket

// Set stores count under label. An existing label keeps its position and takes the new count.
func (b SizeBuckets) Set(label string, count uint64) SizeBuckets {
	for i := range b {
		if b[i].Label == label {
			b[i].Count = count
			return b
		}
	}
	return append(b, SizeBucket{Label: label, Count: count})
}

func (b SizeBuckets) Get(label string) (uint64, bool) {
	for _, bucket := range b {
		if bucket.Label == label {
			return bucket.Count, true
		}
	}
	return 0, false
}

// PacketSizeHistogram holds the RX and TX packet-size distributions of a NIC.
type PacketSizeHistogram struct {
	RX SizeBuckets `json:"rx"`
	TX SizeBuckets `json:"tx"`
}
