package errors

// Error codes for standardized error responses
const (
	// Validation errors
	ErrCodeInvalidRequest   = "invalid_request"
	ErrCodeValidationFailed = "validation_failed"
	ErrCodeMissingAnswers   = "missing_answers"
	ErrCodeInvalidElapsed   = "invalid_elapsed"

	// Generation errors
	ErrCodeGenerationFailed = "generation_failed"
	ErrCodeMalformedResult  = "malformed_result"

	// Server errors
	ErrCodeInternalError    = "internal_error"
	ErrCodeStoreUnavailable = "store_unavailable"
)
