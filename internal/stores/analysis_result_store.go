package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"perflog-analytics/internal/models"
	"perflog-analytics/internal/shared/filestorages"
)

var (
	ErrAnalysisResultNotFound = errors.New("analysis result not found")
)

//go:generate mockgen -source=analysis_result_store.go -destination=./mocks/analysis_result_store_mock.go -package=mocks
type AnalysisResultStore interface {
	Upsert(ctx context.Context, result *models.AnalysisResult) error
	Get(ctx context.Context, kind models.LogKind, digest string) (*models.AnalysisResult, error)
}

type analysisResultStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewAnalysisResultStore(fileStorage filestorages.FileStorage) AnalysisResultStore {
	return &analysisResultStore{fileStorage: fileStorage, dir: "analysis-results"}
}

func (s *analysisResultStore) Upsert(ctx context.Context, result *models.AnalysisResult) error {
	if err := result.Kind.Validate(); err != nil {
		return err
	}
	jsonData, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis result: %w", err)
	}
	key := s.getKey(result.Kind, result.Digest)
	_, err = s.fileStorage.Put(ctx, key, bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to put analysis result: %w", err)
	}
	return nil
}

// Get returns ErrAnalysisResultNotFound when nothing was archived for the digest.
func (s *analysisResultStore) Get(ctx context.Context, kind models.LogKind, digest string) (*models.AnalysisResult, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	readCloser, err := s.fileStorage.Get(ctx, s.getKey(kind, digest))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrAnalysisResultNotFound
		}
		return nil, fmt.Errorf("failed to get analysis result: %w", err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read analysis result: %w", err)
	}
	var result models.AnalysisResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis result: %w", err)
	}
	return &result, nil
}

func (s *analysisResultStore) getKey(kind models.LogKind, digest string) string {
	return fmt.Sprintf("%s/%s.json", s.dir, kind.CacheKey(digest))
}
