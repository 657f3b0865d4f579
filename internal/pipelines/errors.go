package pipelines

import (
	"trade-analytics/internal/shared/svcerrors"
)

// PipelineService errors
const (
	codeValidationFailed = "PIPE_1000"

	codeRunNotFound      = "PIPE_4040"
	codeArtifactNotFound = "PIPE_4041"

	codeInternalStorage = "PIPE_9000"
	codeInternalEmit    = "EMIT_9000"
)

// errValidationFailed returns an error for validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errRunNotFound returns an error when no upload has been processed yet.
func errRunNotFound() *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeRunNotFound, "no processed upload", nil)
}

// errArtifactNotFound returns an error when the current run has no artifact with the name.
func errArtifactNotFound(name string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeArtifactNotFound, "artifact not found: "+name, cause)
}

// errInternalStorage returns an error when uploads, artifacts or the run manifest cannot be stored.
func errInternalStorage(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalStorage, cause)
}

// errInternalEmit returns an error when artifacts cannot be generated.
func errInternalEmit(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalEmit, cause)
}
