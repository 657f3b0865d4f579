package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldRunID        = "run_id"
	FieldFileName     = "file_name"
	FieldClientFamily = "client_family"
	FieldLineNumber   = "line_number"
	FieldToken        = "token"
	FieldArtifact     = "artifact"
	FieldEmitter      = "emitter"
)
