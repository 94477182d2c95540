package filestorages

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readStored(t *testing.T, storage FileStorage, key string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(storage.(*fileStorage).dir, key))
	require.NoError(t, err)
	return string(content)
}

func TestPut_Keys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key     string
		wantErr bool
	}{
		{key: "analysis-results/mcutils/0123abcd.json"},
		{key: "uploads/ethtool/9f86d081884c7d65.log"},
		{key: "single.json"},
		{key: "with.dots_and-dashes/x"},
		{key: "", wantErr: true},
		{key: "/analysis-results/mcutils/abs.json", wantErr: true},
		{key: "..", wantErr: true},
		{key: ".", wantErr: true},
		{key: "../escape.json", wantErr: true},
		{key: "uploads/../../etc/passwd", wantErr: true},
		{key: "a/../..", wantErr: true},
	}

	storage := newTestStorage(t)
	for _, tt := range tests {
		tt := tt
		t.Run(tt.key, func(t *testing.T) {
			result, err := storage.Put(context.Background(), tt.key, strings.NewReader("payload"), PutOptions{})
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.key, result.FileKey)
			assert.Equal(t, "payload", readStored(t, storage, tt.key))
		})
	}
}

func TestPut_ExistingFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		allowOverwrite bool
		wantErr        error
		wantContent    string
	}{
		{name: "write-once upload keeps the first copy", allowOverwrite: false, wantErr: ErrFileAlreadyExists, wantContent: "first"},
		{name: "result document is replaced", allowOverwrite: true, wantContent: "second"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			storage := newTestStorage(t)
			ctx := context.Background()
			key := "uploads/mcutils/00ff00ff00ff00ff.log"

			_, err := storage.Put(ctx, key, strings.NewReader("first"), PutOptions{})
			require.NoError(t, err)

			_, err = storage.Put(ctx, key, strings.NewReader("second"), PutOptions{AllowOverwrite: tt.allowOverwrite})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantContent, readStored(t, storage, key))
		})
	}
}

func TestGet_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := newTestStorage(t).Get(context.Background(), "analysis-results/ethtool/missing.json")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestPutGet_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
		data string
	}{
		{name: "result document", key: "analysis-results/ethtool/9f86d081884c7d65.json", data: `{"kind":"ethtool","digest":"9f86d081884c7d65"}`},
		{name: "large upload", key: "uploads/mcutils/large.log", data: strings.Repeat("| socket0 |  0 |  0 |   10.00 G   |\n", 128*1024)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			storage := newTestStorage(t)
			ctx := context.Background()

			_, err := storage.Put(ctx, tt.key, strings.NewReader(tt.data), PutOptions{})
			require.NoError(t, err)

			readCloser, err := storage.Get(ctx, tt.key)
			require.NoError(t, err)
			content, err := io.ReadAll(readCloser)
			require.NoError(t, err)
			require.NoError(t, readCloser.Close())
			assert.Equal(t, tt.data, string(content))
		})
	}
}

func TestPut_CanceledContext(t *testing.T) {
	t.Parallel()

	storage := newTestStorage(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := storage.Put(ctx, "analysis-results/mcutils/canceled.json", strings.NewReader("data"), PutOptions{AllowOverwrite: true})
	require.ErrorIs(t, err, context.Canceled)

	_, err = storage.Get(context.Background(), "analysis-results/mcutils/canceled.json")
	assert.ErrorIs(t, err, ErrFileNotFound)

	// no temp files are left behind
	entries, err := os.ReadDir(filepath.Join(storage.(*fileStorage).dir, "analysis-results", "mcutils"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNewFileStorage_EmptyRootDir(t *testing.T) {
	t.Parallel()

	_, err := NewFileStorage("")
	assert.ErrorIs(t, err, ErrInvalidRootDir)
}

func newTestStorage(t *testing.T) FileStorage {
	tmpDir := t.TempDir()
	storage, err := NewFileStorage(tmpDir)
	require.NoError(t, err)
	return storage
}
