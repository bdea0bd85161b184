package core

import "fmt"

// Validation error codes.
const (
	CodeEmptyCatalog = "EMPTY_CATALOG"
	CodeNilLevel     = "NIL_LEVEL"
	CodeNegativeSize = "NEGATIVE_SIZE"
	CodeEmptyGoal    = "EMPTY_GOAL"
	CodeBadDamage    = "BAD_DAMAGE"
	CodeBadDirection = "BAD_DIRECTION"
	CodeBadSpeed     = "BAD_SPEED"
	CodeBadStart     = "BAD_START"
)

// ValidationError contains details about malformed level data.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func invalid(code, format string, args ...any) error {
	return ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}
