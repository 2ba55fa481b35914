package apierrors

// Application error codes
const (
	// System Errors
	ErrCodeDatabaseAccess     = "DATABASE_ACCESS_ERROR"     // catalog file read/write failures
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"       // backend unreachable or 503
	ErrCodeRequestValidation  = "REQUEST_VALIDATION_ERROR"  // request body/query failed validation
	ErrCodeInternalProcessing = "INTERNAL_PROCESSING_ERROR" // logic execution failures
	ErrCodeUnauthorized       = "UNAUTHORIZED"              // bad credentials or token

	// Unexpected Errors
	ErrCodeSystemPanic    = "SYSTEM_PANIC"    // recovered panics
	ErrCodeNetworkError   = "NETWORK_ERROR"   // transport failures talking to the backend
	ErrCodeMalformedData  = "MALFORMED_DATA"  // undecodable JSON in either direction
	ErrCodeRequestTimeout = "REQUEST_TIMEOUT" // deadline exceeded or canceled
	ErrCodeUnknown        = "UNKNOWN_ERROR"
)
