// Package domain holds the error taxonomy shared by the per-entity domain
// services. Business-rule violations are reported as *ValidationError so the
// presentation layer can show the reason and let the user correct the input;
// storage-level failures surface as the opaque ErrOperationFailed sentinel.
package domain

import (
	"errors"
	"fmt"
)

// ValidationError is returned by a domain service when a write violates a
// business rule. No store access happens once validation fails.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// ErrOperationFailed is returned by a domain service when the repository
// reports a storage failure. The underlying cause has already been logged by
// the storage gateway; callers get a generic, non-actionable failure.
var ErrOperationFailed = errors.New("operation failed")
