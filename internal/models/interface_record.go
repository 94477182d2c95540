package models

// InterfaceRecord is the summary of one network interface block of an ifconfig/ethtool log.
// Every field except Port is nil when the block does not report it; virtual interfaces,
// for instance, carry no Speed or Duplex.
type InterfaceRecord struct {
	Port         string  `json:"port"`
	IP           *string `json:"ip"`
	MAC          *string `json:"mac"`
	MTU          *uint64 `json:"mtu"`
	Speed        *string `json:"speed"`
	Duplex       *string `json:"duplex"`
	LinkDetected *string `json:"linkDetected"`
	RxPackets    *uint64 `json:"rxPackets"`
	RxBytes      *uint64 `json:"rxBytes"`
	RxErrors     *uint64 `json:"rxErrors"`
	TxPackets    *uint64 `json:"txPackets"`
	TxBytes      *uint64 `json:"txBytes"`
	TxErrors     *uint64 `json:"txErrors"`
}
