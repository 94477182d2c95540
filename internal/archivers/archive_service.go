package archivers

import (
	"context"
	"errors"

	"perflog-analytics/internal/events"
	"perflog-analytics/internal/shared/loggers"
	"perflog-analytics/internal/shared/metrics"
	"perflog-analytics/internal/shared/svcerrors"
	"perflog-analytics/internal/stores"
)

//go:generate mockgen -source=archive_service.go -destination=./mocks/archive_service_mock.go -package=mocks
type ArchiveService interface {
	Archive(ctx context.Context, event *events.AnalysisCompletedEvent) *svcerrors.ServiceError
}

type archiveService struct {
	resultStore stores.AnalysisResultStore
	uploadStore stores.UploadStore
}

func NewArchiveService(resultStore stores.AnalysisResultStore, uploadStore stores.UploadStore) ArchiveService {
	return &archiveService{resultStore: resultStore, uploadStore: uploadStore}
}

// Archive keeps the raw upload (once per digest) and then upserts the parsed result.
// The upload goes first so that every stored result can be re-derived from its log.
func (s *archiveService) Archive(ctx context.Context, event *events.AnalysisCompletedEvent) *svcerrors.ServiceError {
	result := &event.Result
	logger := loggers.Ctx(ctx)
	logger.Debug().
		Str(loggers.FieldAnalysisID, event.AnalysisID).
		Str(loggers.FieldLogKind, string(result.Kind)).
		Str(loggers.FieldDigest, result.Digest).
		Msg("archiving analysis result")

	if len(event.Upload) > 0 {
		err := s.uploadStore.Put(ctx, result.Kind, result.Digest, event.Upload)
		if err != nil && !errors.Is(err, stores.ErrUploadAlreadyExists) {
			svcErr := errInternalUploadStoreFailed(err)
			metricResultsWrittenTotal.WithLabelValues(string(result.Kind), svcErr.Code).Inc()
			return svcErr
		}
	}

	if err := s.resultStore.Upsert(ctx, result); err != nil {
		svcErr := errInternalResultStoreFailed(err)
		metricResultsWrittenTotal.WithLabelValues(string(result.Kind), svcErr.Code).Inc()
		return svcErr
	}

	metricResultsWrittenTotal.WithLabelValues(string(result.Kind), metrics.ValueNoError).Inc()
	return nil
}
