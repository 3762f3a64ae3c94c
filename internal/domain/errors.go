package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrCurrencyMismatch  = errors.New("currency mismatch")
	ErrNegativeAmount    = errors.New("amount cannot be negative")
)

// ValidationErrors collects every violation found while building an entity,
// so a caller sees all bad fields in one rejection instead of one at a time.
type ValidationErrors struct {
	Violations []string
}

func (e *ValidationErrors) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

func (e *ValidationErrors) Add(format string, args ...any) {
	e.Violations = append(e.Violations, fmt.Sprintf(format, args...))
}

// OrNil returns the aggregate as an error, or nil when nothing was recorded.
func (e *ValidationErrors) OrNil() error {
	if len(e.Violations) == 0 {
		return nil
	}
	return e
}
