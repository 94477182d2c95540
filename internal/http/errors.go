package http

import (
	"fmt"

	"perflog-analytics/internal/shared/svcerrors"
)

const (
	codeUnsupportedFormat = "HTTP_1000"
)

func errUnsupportedFormat(format string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnsupportedFormat, fmt.Sprintf("unsupported response format: %q (use json or yaml)", format), nil)
}
