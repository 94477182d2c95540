package analyzers

import (
	"go/format"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadUpload_MultipartBodyLimit(t *testing.T) {
	t.Parallel()

	body, contentType := multipartBody(t, "file", ethtoolLog)
	limited := http.MaxBytesReader(httptest.NewRecorder(), io.NopCloser(strings.NewReader(strings.Repeat("x", 64)+body.String())), 16)

	_, svcErr := readUpload(limited, contentType, 1<<20)
	require.NotNil(t, svcErr)
	assert.Equal(t, codeUploadTooLarge, svcErr.Code)
	assert.Equal(t, http.StatusRequestEntityTooLarge, svcErr.HttpStatusCode)
}

func TestReadUpload_MalformedMultipart(t *testing.T) {
	t.Parallel()

	_, svcErr := readUpload(strings.NewReader("no boundary lines at all\n"), "multipart/form-data; boundary=xyz", 1<<20)
	require.NotNil(t, svcErr)
	assert.Equal(t, codeInvalidUpload, svcErr.Code)
	assert.Equal(t, http.StatusBadRequest, svcErr.HttpStatusCode)
}

func TestSourcesAreGofmted(t *testing.T) {
	t.Parallel()

	files, err := filepath.Glob("*.go")
	require.NoError(t, err)
	for _, file := range files {
		src, err := os.ReadFile(file)
		require.NoError(t, err)
		formatted, err := format.Source(src)
		require.NoError(t, err, file)
		assert.Equal(t, string(formatted), string(src), "%s is not gofmt-formatted", file)
	}
}
