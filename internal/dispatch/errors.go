package dispatch

import (
	"errors"
	"fmt"
)

// ErrorKind classifies dispatch failures.
type ErrorKind uint8

const (
	// KindRange is an index outside [0, length] for a mutating or poking
	// operation.
	KindRange ErrorKind = iota
	// KindTypeMismatch is an operand datatype incompatible with the verb.
	KindTypeMismatch
	// KindInvalidArgument is a malformed refinement combination or
	// out-of-domain scalar.
	KindInvalidArgument
	// KindLockedSeries is a mutation attempted on a protected series.
	KindLockedSeries
	// KindIllegalAction is a verb not supported for the datatype at all.
	KindIllegalAction
)

// String returns the taxonomy name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindRange:
		return "range"
	case KindTypeMismatch:
		return "type-mismatch"
	case KindInvalidArgument:
		return "invalid-argument"
	case KindLockedSeries:
		return "locked-series"
	case KindIllegalAction:
		return "illegal-action"
	default:
		return "unknown"
	}
}

// Error is a classified dispatch failure.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("dispatch: %s error: %s", e.Kind, e.Msg)
	}
	if e.Err != nil {
		return fmt.Sprintf("dispatch: %s error: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("dispatch: %s error", e.Kind)
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

func rangeErr(format string, args ...any) error {
	return &Error{Kind: KindRange, Msg: fmt.Sprintf(format, args...)}
}

func typeErr(format string, args ...any) error {
	return &Error{Kind: KindTypeMismatch, Msg: fmt.Sprintf(format, args...)}
}

func argErr(format string, args ...any) error {
	return &Error{Kind: KindInvalidArgument, Msg: fmt.Sprintf(format, args...)}
}

func lockedErr() error {
	return &Error{Kind: KindLockedSeries, Msg: "series is protected"}
}

func illegalErr(v Verb, k fmt.Stringer) error {
	return &Error{Kind: KindIllegalAction, Msg: fmt.Sprintf("%s not allowed on %s", v, k)}
}

// KindOf extracts the taxonomy kind from err. ok is false when err is not a
// dispatch error.
func KindOf(err error) (ErrorKind, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return 0, false
}
