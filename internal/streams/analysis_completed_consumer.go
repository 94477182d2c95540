package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"strconv"
	"sync"

	"perflog-analytics/internal/archivers"
	"perflog-analytics/internal/events"
	"perflog-analytics/internal/shared/loggers"
	"perflog-analytics/internal/shared/metrics"
	"perflog-analytics/internal/shared/svcerrors"
	"perflog-analytics/internal/shared/ulid"
)

//go:generate mockgen -source=analysis_completed_consumer.go -destination=./mocks/analysis_completed_consumer_mock.go -package=mocks
type AnalysisCompletedConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type analysisCompletedConsumer struct {
	queue          *PartitionedQueue[events.AnalysisCompletedEvent]
	archiveService archivers.ArchiveService

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewAnalysisCompletedConsumer(queue *PartitionedQueue[events.AnalysisCompletedEvent], archiveService archivers.ArchiveService, logger loggers.Logger) AnalysisCompletedConsumer {
	return &analysisCompletedConsumer{
		queue:          queue,
		archiveService: archiveService,
		stopCh:         make(chan struct{}),
		logger:         logger,
	}
}

// Start spawns 1 worker goroutine per partition.
func (consumer *analysisCompletedConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		partitionIndex := partitionIndex
		ch := consumer.queue.Partition(partitionIndex)
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()
			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

// Stop waits for workers to return. Close the queue first to let them drain pending events;
// otherwise pending events are dropped.
func (consumer *analysisCompletedConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *analysisCompletedConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan events.AnalysisCompletedEvent) {
	workerLogger := consumer.logger.With().
		Str(loggers.FieldPartitionId, strconv.Itoa(partitionIndex)).
		Logger()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			consumer.handle(ctx, workerLogger, &event)
		case <-consumer.stopCh:
			// drain whatever is already buffered when the queue has been closed
			for {
				select {
				case event, ok := <-ch:
					if !ok {
						return
					}
					consumer.handle(ctx, workerLogger, &event)
				default:
					return
				}
			}
		}
	}
}

func (consumer *analysisCompletedConsumer) handle(ctx context.Context, workerLogger loggers.Logger, event *events.AnalysisCompletedEvent) {
	ctx = workerLogger.With().
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Str(loggers.FieldAnalysisID, event.AnalysisID).
		Logger().WithContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("consumer panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}
			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricAnalysisCompletedConsumedTotal.WithLabelValues(streamAnalysisCompleted, svcErr.Code).Inc()
		}
	}()

	svcError := consumer.archiveService.Archive(ctx, event)
	if svcError != nil {
		loggers.Ctx(ctx).Error().
			Err(svcError.Cause).
			Str(loggers.FieldErrorCode, svcError.Code).
			Msg("failed to archive analysis result")
		metricAnalysisCompletedConsumedTotal.WithLabelValues(streamAnalysisCompleted, svcError.Code).Inc()
		return
	}
	metricAnalysisCompletedConsumedTotal.WithLabelValues(streamAnalysisCompleted, metrics.ValueNoError).Inc()
}
