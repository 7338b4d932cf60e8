package cli

import (
	"github.com/roach88/fancyformats/internal/results"
)

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeNotFound    = "E005" // Path not found
	ErrCodeWriteFailed = "E007" // File read or write error

	// Scoring errors
	ErrCodeFormat     = "E201" // Malformed or non-IOF result list
	ErrCodeValidation = "E202" // No event, no courses, bad course index, empty course
	ErrCodeConfig     = "E203" // Unknown format, bad penalty type or amount
)

// ErrorCode maps an error to its CLI error code by results kind.
func ErrorCode(err error) string {
	switch results.KindOf(err) {
	case results.ErrNotFound:
		return ErrCodeNotFound
	case results.ErrFormat:
		return ErrCodeFormat
	case results.ErrValidation:
		return ErrCodeValidation
	case results.ErrConfig:
		return ErrCodeConfig
	case results.ErrIO:
		return ErrCodeWriteFailed
	default:
		return ErrCodeGeneric
	}
}

// reportError prints err through the formatter and returns the ExitError
// for it. Input problems are command errors (exit 2); anything else that
// stopped the run is a failure (exit 1).
func reportError(formatter *OutputFormatter, message string, err error, traceID string) error {
	code := ErrorCode(err)
	_ = formatter.ErrorWithTrace(code, err.Error(), nil, traceID)

	exit := ExitFailure
	switch code {
	case ErrCodeNotFound, ErrCodeConfig:
		exit = ExitCommandError
	}
	return WrapExitError(exit, code+": "+message, err)
}
