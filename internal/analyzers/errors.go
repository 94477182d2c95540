package analyzers

import (
	"fmt"

	"perflog-analytics/internal/shared/svcerrors"
)

const (
	codeInvalidFilter        = "ANA_1000"
	codeUploadTooLarge       = "ANA_1001"
	codeUnsupportedMediaType = "ANA_1002"
	codeInvalidUpload        = "ANA_1003"

	codeInternalResultStoreFailed = "ANA_9000"
	codeInternalPublishFailed     = "ANA_9001"
)

func errInvalidFilter(details []string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidFilter, "invalid filter", cause).WithDetails(details...)
}

func errUploadTooLarge(maxBytes int) *svcerrors.ServiceError {
	return svcerrors.NewPayloadTooLargeError(codeUploadTooLarge, fmt.Sprintf("log too large: must be <= %d bytes", maxBytes), nil)
}

func errUnsupportedMediaType(contentType string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnsupportedMediaTypeError(codeUnsupportedMediaType, fmt.Sprintf("unsupported content type: %q", contentType), cause)
}

func errInvalidUpload(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidUpload, msg, cause)
}

func errInternalResultStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalResultStoreFailed, fmt.Errorf("analysisResultStoreFailed: %w", cause))
}

// errInternalPublishFailed is only logged: archiving is best effort and never fails a request.
func errInternalPublishFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalPublishFailed, fmt.Errorf("analysisCompletedPublishFailed: %w", cause))
}
