package analyzers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"perflog-analytics/internal/aggregators"
	"perflog-analytics/internal/events"
	"perflog-analytics/internal/models"
	"perflog-analytics/internal/parsers"
	"perflog-analytics/internal/shared/loggers"
	"perflog-analytics/internal/shared/metrics"
	"perflog-analytics/internal/shared/svcerrors"
	"perflog-analytics/internal/shared/ulid"
	"perflog-analytics/internal/shared/validators"
	"perflog-analytics/internal/stores"
	"perflog-analytics/internal/streams"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// Options tunes an AnalysisService.
type Options struct {
	MaxUploadBytes int
	CacheSize      int
	ArchiveResults bool
}

//go:generate mockgen -source=analysis_service.go -destination=./mocks/analysis_service_mock.go -package=mocks
type AnalysisService interface {
	// AnalyzeMcUtils parses a McUtils bandwidth log and reports the samples and statistics
	// selected by filter.
	AnalyzeMcUtils(ctx context.Context, r io.Reader, contentType string, filter models.BandwidthFilter) (*models.BandwidthReport, error)
	// AnalyzeEthtool parses an ifconfig/ethtool dump into interface, packet-size and link sections.
	AnalyzeEthtool(ctx context.Context, r io.Reader, contentType string) (*models.NetworkReport, error)
}

type analysisService struct {
	aggregator  aggregators.BandwidthAggregator
	resultStore stores.AnalysisResultStore
	producer    streams.AnalysisCompletedProducer
	validate    *validators.Validate
	options     Options

	// cache and inflight are keyed by LogKind.CacheKey(digest).
	cache    *lru.Cache[string, *models.AnalysisResult]
	inflight singleflight.Group

	now func() time.Time
}

func NewAnalysisService(aggregator aggregators.BandwidthAggregator, resultStore stores.AnalysisResultStore, producer streams.AnalysisCompletedProducer, options Options) (AnalysisService, error) {
	cache, err := lru.New[string, *models.AnalysisResult](options.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create result cache: %w", err)
	}
	return &analysisService{
		aggregator:  aggregator,
		resultStore: resultStore,
		producer:    producer,
		validate:    validators.New(),
		options:     options,
		cache:       cache,
		now:         func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *analysisService) AnalyzeMcUtils(ctx context.Context, r io.Reader, contentType string, filter models.BandwidthFilter) (*models.BandwidthReport, error) {
	report, svcErr := s.analyzeMcUtils(ctx, r, contentType, filter)
	observeRequest(models.LogKindMcUtils, svcErr)
	if svcErr != nil {
		return nil, svcErr
	}
	return report, nil
}

func (s *analysisService) analyzeMcUtils(ctx context.Context, r io.Reader, contentType string, filter models.BandwidthFilter) (*models.BandwidthReport, *svcerrors.ServiceError) {
	if svcErr := s.validateFilter(filter); svcErr != nil {
		return nil, svcErr
	}
	raw, svcErr := readUpload(r, contentType, s.options.MaxUploadBytes)
	if svcErr != nil {
		return nil, svcErr
	}

	result, svcErr := s.resolve(ctx, models.LogKindMcUtils, raw)
	if svcErr != nil {
		return nil, svcErr
	}

	return &models.BandwidthReport{
		AnalysisID: result.AnalysisID,
		Digest:     result.Digest,
		Dimensions: s.aggregator.Dimensions(result.Samples),
		Filter:     normalizeFilter(filter),
		Samples:    s.aggregator.Filter(result.Samples, filter),
		Statistics: s.aggregator.Statistics(result.Samples, filter),
	}, nil
}

func (s *analysisService) AnalyzeEthtool(ctx context.Context, r io.Reader, contentType string) (*models.NetworkReport, error) {
	report, svcErr := s.analyzeEthtool(ctx, r, contentType)
	observeRequest(models.LogKindEthtool, svcErr)
	if svcErr != nil {
		return nil, svcErr
	}
	return report, nil
}

func (s *analysisService) analyzeEthtool(ctx context.Context, r io.Reader, contentType string) (*models.NetworkReport, *svcerrors.ServiceError) {
	raw, svcErr := readUpload(r, contentType, s.options.MaxUploadBytes)
	if svcErr != nil {
		return nil, svcErr
	}

	result, svcErr := s.resolve(ctx, models.LogKindEthtool, raw)
	if svcErr != nil {
		return nil, svcErr
	}

	return &models.NetworkReport{
		AnalysisID:      result.AnalysisID,
		Digest:          result.Digest,
		NetworkSections: *result.Network,
	}, nil
}

// resolve answers from the memory cache, then the result store, then by parsing raw.
// Concurrent calls for the same content share one lookup.
func (s *analysisService) resolve(ctx context.Context, kind models.LogKind, raw []byte) (*models.AnalysisResult, *svcerrors.ServiceError) {
	digest := Digest(raw)
	key := kind.CacheKey(digest)
	logger := loggers.Ctx(ctx).With().
		Str(loggers.FieldLogKind, string(kind)).
		Str(loggers.FieldDigest, digest).
		Logger()

	if result, ok := s.cache.Get(key); ok {
		metricCacheLookupsTotal.WithLabelValues(string(kind), layerMemory, outcomeHit).Inc()
		logger.Debug().Msg("analysis result served from memory")
		return result, nil
	}
	metricCacheLookupsTotal.WithLabelValues(string(kind), layerMemory, outcomeMiss).Inc()

	value, err, shared := s.inflight.Do(key, func() (any, error) {
		// a flight that finished after our cache miss has already filled the cache
		if result, ok := s.cache.Get(key); ok {
			return result, nil
		}
		stored, err := s.resultStore.Get(ctx, kind, digest)
		switch {
		case err == nil:
			metricCacheLookupsTotal.WithLabelValues(string(kind), layerStore, outcomeHit).Inc()
			logger.Debug().Msg("analysis result served from store")
			normalizeResult(kind, stored)
			s.cache.Add(key, stored)
			return stored, nil
		case errors.Is(err, stores.ErrAnalysisResultNotFound):
			metricCacheLookupsTotal.WithLabelValues(string(kind), layerStore, outcomeMiss).Inc()
		default:
			return nil, errInternalResultStoreFailed(err)
		}

		result := s.parse(kind, digest, raw)
		s.cache.Add(key, result)
		logger.Info().
			Str(loggers.FieldAnalysisID, result.AnalysisID).
			Msg("log analyzed")
		// waiters share the result, so archiving outlives the first caller's request
		s.publish(context.WithoutCancel(ctx), result, raw)
		return result, nil
	})
	if err != nil {
		svcErr, ok := svcerrors.AsServiceError(err)
		if !ok {
			svcErr = svcerrors.NewInternalErrorUndefined(err)
		}
		return nil, svcErr
	}
	if shared {
		logger.Debug().Msg("analysis shared with a concurrent request")
	}
	return value.(*models.AnalysisResult), nil
}

func (s *analysisService) parse(kind models.LogKind, digest string, raw []byte) *models.AnalysisResult {
	text := string(raw)
	createdAt := s.now()
	result := &models.AnalysisResult{
		Kind:       kind,
		Digest:     digest,
		AnalysisID: ulid.NewULIDAt(createdAt),
		CreatedAt:  createdAt,
	}

	switch kind {
	case models.LogKindMcUtils:
		result.Samples = parsers.ParseBandwidthLog(text)
		metricRecordsParsedTotal.WithLabelValues(string(kind)).Add(float64(len(result.Samples)))
	case models.LogKindEthtool:
		result.Network = &models.NetworkSections{
			Interfaces:     parsers.ParseInterfaces(text),
			PacketSizes:    parsers.ParsePacketSizes(text),
			LinkStatistics: parsers.ParseLinkStats(text),
		}
		metricRecordsParsedTotal.WithLabelValues(string(kind)).Add(float64(len(result.Network.Interfaces)))
	}
	return result
}

// publish hands a fresh result to the archiver. Failures are only logged.
func (s *analysisService) publish(ctx context.Context, result *models.AnalysisResult, raw []byte) {
	if !s.options.ArchiveResults {
		return
	}
	event := &events.AnalysisCompletedEvent{
		AnalysisID: result.AnalysisID,
		Result:     *result,
		Upload:     raw,
	}
	if err := s.producer.Produce(ctx, event); err != nil {
		svcErr := errInternalPublishFailed(err)
		loggers.Ctx(ctx).Error().
			Err(svcErr.Cause).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Str(loggers.FieldAnalysisID, result.AnalysisID).
			Msg("failed to publish analysis result for archiving")
	}
}

func (s *analysisService) validateFilter(filter models.BandwidthFilter) *svcerrors.ServiceError {
	err := s.validate.Struct(filter)
	if err == nil {
		return nil
	}
	var details []string
	var validationErrors validators.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldErr := range validationErrors {
			details = append(details, fmt.Sprintf("%s: %s", fieldErr.Field(), fieldErr.Tag()))
		}
	}
	return errInvalidFilter(details, err)
}

// Digest identifies log content: the hex xxhash64 of the raw bytes.
func Digest(raw []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(raw))
}

func observeRequest(kind models.LogKind, svcErr *svcerrors.ServiceError) {
	code := metrics.ValueNoError
	if svcErr != nil {
		code = svcErr.Code
	}
	metricAnalysisRequestsTotal.WithLabelValues(string(kind), code).Inc()
}

// normalizeResult restores the empty collections that omitempty drops from stored documents.
func normalizeResult(kind models.LogKind, result *models.AnalysisResult) {
	switch kind {
	case models.LogKindMcUtils:
		if result.Samples == nil {
			result.Samples = []models.BandwidthSample{}
		}
	case models.LogKindEthtool:
		if result.Network == nil {
			result.Network = &models.NetworkSections{}
		}
		if result.Network.Interfaces == nil {
			result.Network.Interfaces = []models.InterfaceRecord{}
		}
		if result.Network.PacketSizes.RX == nil {
			result.Network.PacketSizes.RX = models.SizeBuckets{}
		}
		if result.Network.PacketSizes.TX == nil {
			result.Network.PacketSizes.TX = models.SizeBuckets{}
		}
		if result.Network.LinkStatistics == nil {
			result.Network.LinkStatistics = models.LinkStatistics{}
		}
	}
}

func normalizeFilter(filter models.BandwidthFilter) models.BandwidthFilter {
	if filter.Sockets == nil {
		filter.Sockets = []string{}
	}
	if filter.Mcs == nil {
		filter.Mcs = []string{}
	}
	if filter.Chs == nil {
		filter.Chs = []string{}
	}
	return filter
}
