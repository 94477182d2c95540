package models

import (
	"fmt"
)

// LogKind identifies which parsing pipeline a log is analyzed with.
type LogKind string

const (
	LogKindMcUtils LogKind = "mcutils"
	LogKindEthtool LogKind = "ethtool"
)

func (k LogKind) Validate() error {
	switch k {
	case LogKindMcUtils, LogKindEthtool:
		return nil
	default:
		return fmt.Errorf("invalid LogKind: %q", k)
	}
}

// CacheKey returns the key under which results of this kind are cached for a content digest.
func (k LogKind) CacheKey(digest string) string {
	if err := k.Validate(); err != nil {
		panic(err.Error())
	}
	return fmt.Sprintf("%s/%s", k, digest)
}
