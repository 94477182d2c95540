package archivers

import (
	"fmt"

	"perflog-analytics/internal/shared/svcerrors"
)

const (
	codeInternalResultStoreFailed = "ARC_9000"
	codeInternalUploadStoreFailed = "ARC_9001"
)

func errInternalResultStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalResultStoreFailed, fmt.Errorf("analysisResultStoreFailed: %w", cause))
}

func errInternalUploadStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalUploadStoreFailed, fmt.Errorf("uploadStoreFailed: %w", cause))
}
