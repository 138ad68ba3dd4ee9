package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeMissingParameter     ErrorCode = 102
	ErrCodeInvalidPeriod        ErrorCode = 103
	ErrCodeInvalidType          ErrorCode = 104

	// Data/Column errors (200-299)
	ErrCodeColumnNotFound       ErrorCode = 200
	ErrCodeColumnAlreadyExists  ErrorCode = 201
	ErrCodeColumnLengthMismatch ErrorCode = 202
	ErrCodeEmptySeries          ErrorCode = 203

	// Indicator errors (300-399)
	ErrCodeIndicatorNotFound      ErrorCode = 300
	ErrCodeIndicatorAlreadyExists ErrorCode = 301

	// Generation errors (500-599)
	ErrCodeGenerationFailed      ErrorCode = 500
	ErrCodeMissingBlockParameter ErrorCode = 501
	ErrCodeUnknownPreset         ErrorCode = 502
	ErrCodeSpecParseFailed       ErrorCode = 503
)
