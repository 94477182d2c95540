package events

import (
	"perflog-analytics/internal/models"
)

// AnalysisCompletedEvent is emitted when a log has been parsed from scratch (no cache
// layer knew its digest). It is consumed by the archiver, which stores the result so
// that a later upload of the same bytes is answered without parsing.
//
// Example JSON:
//
//	{
//	  "analysisId": "01ARZ3NDEKTSV4RRFFQ69G5FAV",
//	  "result": {
//	    "kind": "mcutils",
//	    "digest": "c0ffee00c0ffee00",
//	    "analysisId": "01ARZ3NDEKTSV4RRFFQ69G5FAV",
//	    "createdAt": "2025-12-28T18:03:00Z",
//	    "samples": [{"lineNumber": 4, "socket": "socket0", "mc": "0", "ch": "0", "read": 10}]
//	  }
//	}
//
// Events are partitioned by result digest, so two uploads of the same log are archived
// by the same worker, one after the other.
type AnalysisCompletedEvent struct {
	AnalysisID string                `json:"analysisId"`
	Result     models.AnalysisResult `json:"result"`
	// Upload is the raw log the result was parsed from.
	Upload []byte `json:"-"`
}

func (e *AnalysisCompletedEvent) PartitionKey() string {
	return e.Result.Kind.CacheKey(e.Result.Digest)
}
