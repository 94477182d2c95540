package analyzers

import (
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"unicode/utf8"

	"perflog-analytics/internal/shared/svcerrors"
)

const (
	multipartFileField = "file"

	mediaTypeMultipart   = "multipart/form-data"
	mediaTypeOctetStream = "application/octet-stream"
)

// readUpload returns the log text of a request body. The body is either the raw log or a
// multipart form carrying the log in its "file" field.
func readUpload(r io.Reader, contentType string, maxBytes int) ([]byte, *svcerrors.ServiceError) {
	if r == nil {
		return []byte{}, nil
	}

	mediaType := ""
	var params map[string]string
	if strings.TrimSpace(contentType) != "" {
		var err error
		mediaType, params, err = mime.ParseMediaType(contentType)
		if err != nil {
			return nil, errUnsupportedMediaType(contentType, err)
		}
	}

	var raw []byte
	var svcErr *svcerrors.ServiceError
	switch {
	case mediaType == mediaTypeMultipart:
		raw, svcErr = readMultipartFile(r, params["boundary"], maxBytes)
	case mediaType == "", mediaType == mediaTypeOctetStream, strings.HasPrefix(mediaType, "text/"):
		raw, svcErr = readWithLimit(r, maxBytes)
	default:
		return nil, errUnsupportedMediaType(contentType, nil)
	}
	if svcErr != nil {
		return nil, svcErr
	}

	if !utf8.Valid(raw) {
		return nil, errInvalidUpload("log is not valid UTF-8 text", nil)
	}
	return raw, nil
}

func readMultipartFile(r io.Reader, boundary string, maxBytes int) ([]byte, *svcerrors.ServiceError) {
	if boundary == "" {
		return nil, errInvalidUpload("multipart body without boundary", nil)
	}

	reader := multipart.NewReader(r, boundary)
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			return nil, errInvalidUpload(`multipart body has no "file" field`, nil)
		}
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				return nil, errUploadTooLarge(maxBytes)
			}
			return nil, errInvalidUpload("malformed multipart body", err)
		}
		if part.FormName() != multipartFileField {
			continue
		}
		raw, svcErr := readWithLimit(part, maxBytes)
		_ = part.Close()
		return raw, svcErr
	}
}

// readWithLimit reads up to max+1 bytes from r and fails if there are more than max.
func readWithLimit(r io.Reader, max int) ([]byte, *svcerrors.ServiceError) {
	buf, err := io.ReadAll(io.LimitReader(r, int64(max)+1))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, errUploadTooLarge(max)
		}
		return nil, errInvalidUpload("failed to read log", err)
	}
	if len(buf) > max {
		return nil, errUploadTooLarge(max)
	}
	return buf, nil
}
