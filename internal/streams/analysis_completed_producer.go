package streams

import (
	"context"

	"perflog-analytics/internal/events"
)

// AnalysisCompletedProducer publishes freshly parsed results for archiving.
//
// Events are keyed by "<kind>/<digest>". Since the consumer runs one worker per partition,
// two uploads of the same log are archived one after the other by the same worker and never
// race on the same document, while different logs are archived in parallel.
//
//go:generate mockgen -source=analysis_completed_producer.go -destination=./mocks/analysis_completed_producer_mock.go -package=mocks
type AnalysisCompletedProducer interface {
	Produce(ctx context.Context, event *events.AnalysisCompletedEvent) error
}

type analysisCompletedProducer struct {
	queue *PartitionedQueue[events.AnalysisCompletedEvent]
}

func NewAnalysisCompletedProducer(queue *PartitionedQueue[events.AnalysisCompletedEvent]) AnalysisCompletedProducer {
	return &analysisCompletedProducer{queue: queue}
}

func (producer *analysisCompletedProducer) Produce(ctx context.Context, event *events.AnalysisCompletedEvent) error {
	if err := producer.queue.Publish(ctx, event.PartitionKey(), *event); err != nil {
		return err
	}
	metricAnalysisCompletedProducedTotal.WithLabelValues(streamAnalysisCompleted).Inc()
	return nil
}
