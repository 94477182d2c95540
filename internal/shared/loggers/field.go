package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"
	FieldUserAgent  = "user_agent"

	FieldDuration      = "duration"
	FieldRequestID     = "request_id"
	FieldErrorStack    = "error_stack"
	FieldErrorCode     = "error_code"
	FieldErrorCategory = "error_category"

	FieldAnalysisID = "analysis_id"
	FieldLogKind    = "log_kind"
	FieldDigest     = "digest"

	FieldPartitionId = "partition_id"
)
