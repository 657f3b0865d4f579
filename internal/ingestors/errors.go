package ingestors

import (
	"fmt"

	"trade-analytics/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeValidationFailed = "ING_1000"

	codeInternalReadFailed = "ING_9000"
)

// errValidationFailed returns an error for validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errInternalReadFailed returns an error when the upload stream cannot be read to the end.
func errInternalReadFailed(lineNumber int64, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReadFailed, fmt.Errorf("readFailed after line %d: %w", lineNumber, cause))
}
