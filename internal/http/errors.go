package http

import (
	"fmt"

	"trade-analytics/internal/shared/svcerrors"
)

// HTTP layer errors
const (
	codeInvalidUpload = "HTTP_1000"

	codeRateLimited = "HTTP_4290"
)

// errUploadTooLarge returns an error when the request body exceeds the upload limit.
func errUploadTooLarge(limit int64, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidUpload, fmt.Sprintf("upload exceeds %d bytes", limit), cause)
}

// errInvalidMultipart returns an error when the request is not a readable multipart form.
func errInvalidMultipart(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidUpload, "invalid multipart form", cause)
}

// errRateLimited returns an error when uploads arrive faster than the configured rate.
func errRateLimited() *svcerrors.ServiceError {
	return svcerrors.NewResourceExhaustedError(codeRateLimited, "too many uploads, retry later")
}
