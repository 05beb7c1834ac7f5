package logx

const (
	FieldAppName    = "app-name"
	FieldAppVersion = "app-version"
	FieldAccounts   = "accounts"
	FieldDurationMs = "duration-ms"
	FieldEntry      = "entry"
	FieldError      = "error"
	FieldFile       = "file"
	FieldHTTPMethod = "http-method"
	FieldIP         = "ip"
	FieldMode       = "mode"
	FieldOutcome    = "outcome"
	FieldOutput     = "output"
	FieldResult     = "result"
	FieldStack      = "stack"
	FieldTraceID    = "trace-id"
	FieldURL        = "url"
	FieldWorkers    = "workers"
)
