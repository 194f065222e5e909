package fault

import (
	"errors"
	"fmt"
)

// Marker is implemented by errors that identify themselves as defects:
// programmer or configuration mistakes that must unwind to the
// fatal-signal handler instead of becoming Failure values.
type Marker interface {
	Defect() bool
}

// MarkDefect wraps err so IsDefect reports true for it. Use it when a
// call site knows statically that an error is a programmer mistake
// (invalid argument, illegal state, unsupported operation).
func MarkDefect(err error) error {
	if err == nil {
		return nil
	}
	return &markedDefect{err: err}
}

// IsDefect reports whether any error in err's chain identifies itself
// as a defect.
func IsDefect(err error) bool {
	var m Marker
	return errors.As(err, &m) && m.Defect()
}

type markedDefect struct {
	err error
}

func (d *markedDefect) Error() string { return d.err.Error() }
func (d *markedDefect) Unwrap() error { return d.err }
func (d *markedDefect) Defect() bool  { return true }

// DefectError is the panic value raised on programmer misuse of the
// library itself, e.g. unwrapping a failed Outcome without inspecting
// it. It carries the original Failure for diagnostics.
type DefectError struct {
	// Operation names the misused call.
	Operation string

	// Failure is the failure the caller should have inspected.
	Failure Failure
}

func (e *DefectError) Error() string {
	return fmt.Sprintf("fault: defect in %s: %s", e.Operation, e.Failure.Error())
}

func (e *DefectError) Unwrap() error { return e.Failure }
func (e *DefectError) Defect() bool  { return true }
