package logger

// Log Level String Values
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log Format String Values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Service Configuration Values
const DefaultServiceName = "nenelo-bot"

// Log Attribute Keys
const (
	AttrKeyService   = "service"
	AttrKeyRequestID = "request_id"
)
