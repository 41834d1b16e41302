package errs

import (
	"fmt"
	"strings"

	"github.com/Astemirdum/notebook-loan-service/pkg/auth"
	"github.com/pkg/errors"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrNotebookUnavailable = errors.New("notebook is not available")
	ErrInvalidTransition   = errors.New("invalid loan transition")
	ErrNothingToExport     = errors.New("nothing to export")
	ErrForbidden           = errors.New("forbidden")
	ErrUnauthenticated     = auth.ErrUnauthenticated
)

// ValidationError blocks a submission before anything reaches the store.
type ValidationError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func Validation(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// BackendError is a failed store call.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *BackendError) Unwrap() error { return e.Err }

func Backend(op string, err error) error {
	if err == nil {
		return nil
	}
	return &BackendError{Op: op, Err: err}
}

// Step is one sub-operation of a multi-entity loan operation.
type Step struct {
	Name       string `json:"name"`
	NotebookID string `json:"notebookId,omitempty"`
	Error      string `json:"error,omitempty"`
}

// PartialFailureError reports a loan operation whose loan write succeeded
// while some notebook steps did not.
type PartialFailureError struct {
	Op        string `json:"op"`
	LoanID    string `json:"loanId"`
	Completed []Step `json:"completed"`
	Pending   []Step `json:"pending"`
}

func (e *PartialFailureError) Error() string {
	names := make([]string, 0, len(e.Pending))
	for _, s := range e.Pending {
		names = append(names, s.Name)
	}
	return fmt.Sprintf("%s %s: %d step(s) not completed: %s", e.Op, e.LoanID, len(e.Pending), strings.Join(names, ", "))
}

func AsPartialFailure(err error) (*PartialFailureError, bool) {
	var pf *PartialFailureError
	if errors.As(err, &pf) {
		return pf, true
	}
	return nil, false
}

type ErrorResponse struct {
	Message string `json:"message"`
}
