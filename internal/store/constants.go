package store

// Log messages for persistence operations
const (
	LogMsgReadFailed        = "Failed to read document"
	LogMsgMalformedDocument = "Malformed document, treating as empty"
	LogMsgWriteFailed       = "Failed to write document"
	LogMsgDocumentSaved     = "Document saved"
)
