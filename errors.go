package assoc

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes errors raised by containers. The set of kinds is closed.
type ErrorKind int

// Every error returned from a container operation carries one of these kinds.
const (
	NoError          ErrorKind = iota
	InvalidArgument            // nil or illegal input, nothing has been mutated
	DuplicateKey               // key already present in a unique column
	KeyNotFound                // key absent from a lookup table
	Unsupported                // operation not offered by this container type
	ConsistencyFault           // internal invariant violation, container has been repaired
	ReadOnly                   // mutation of a read-only container or view
)

func (k ErrorKind) String() string {
	switch k {
	case NoError:
		return "no error"
	case InvalidArgument:
		return "invalid argument"
	case DuplicateKey:
		return "duplicate key"
	case KeyNotFound:
		return "key not found"
	case Unsupported:
		return "unsupported operation"
	case ConsistencyFault:
		return "consistency fault"
	case ReadOnly:
		return "read-only violation"
	}
	return fmt.Sprintf("error kind(%d)", int(k))
}

// Error is the error type for all container operations.
type Error struct {
	Kind  ErrorKind
	Op    string // operation, e.g. "UniqueSet.Add"
	Key   any    // offending key, if any
	Msg   string
	Cause error
}

// Sentinels to be used with errors.Is. They match any *Error of the same kind.
var (
	ErrInvalidArgument  = &Error{Kind: InvalidArgument}
	ErrDuplicateKey     = &Error{Kind: DuplicateKey}
	ErrKeyNotFound      = &Error{Kind: KeyNotFound}
	ErrUnsupported      = &Error{Kind: Unsupported}
	ErrConsistencyFault = &Error{Kind: ConsistencyFault}
	ErrReadOnly         = &Error{Kind: ReadOnly}
)

func (e *Error) Error() string {
	s := e.Kind.String()
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Key != nil {
		s = fmt.Sprintf("%s %v", s, e.Key)
	}
	if e.Msg != "" {
		s = s + ": " + e.Msg
	}
	if e.Cause != nil {
		s = s + ": " + e.Cause.Error()
	}
	return s
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches sentinel errors by kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Op == "" && t.Key == nil && t.Msg == ""
}

// KindOf returns the kind of err, or NoError if err is nil or not an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return NoError
}

// --- Constructors ----------------------------------------------------------

// Invalid creates an error of kind InvalidArgument.
func Invalid(op string, format string, args ...any) *Error {
	return &Error{Kind: InvalidArgument, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// IndexOutOfRange creates an InvalidArgument error for a position outside 0…n-1
// (or 0…n for insertions).
func IndexOutOfRange(op string, index, count int) *Error {
	return Invalid(op, "index %d out of range [0…%d)", index, count)
}

// Duplicate creates an error of kind DuplicateKey.
func Duplicate(op string, key any) *Error {
	return &Error{Kind: DuplicateKey, Op: op, Key: key}
}

// NotFound creates an error of kind KeyNotFound.
func NotFound(op string, key any) *Error {
	return &Error{Kind: KeyNotFound, Op: op, Key: key}
}

// NotSupported creates an error of kind Unsupported. The message should name
// the type to use instead.
func NotSupported(op string, msg string) *Error {
	return &Error{Kind: Unsupported, Op: op, Msg: msg}
}

// ReadOnlyViolation creates an error of kind ReadOnly.
func ReadOnlyViolation(op string) *Error {
	return &Error{Kind: ReadOnly, Op: op, Msg: "container is read-only"}
}

// Fault creates an error of kind ConsistencyFault and traces it. Containers
// call it after they have restored their invariants. If the configuration
// flag 'panic-on-inconsistency' is set, Fault panics with the error.
func Fault(op string, cause error) *Error {
	err := &Error{Kind: ConsistencyFault, Op: op, Cause: cause}
	tracer().Errorf("%s", err.Error())
	if PanicOnInconsistency() {
		panic(err)
	}
	return err
}

// Recovered converts a value obtained from recover() into an error suitable as
// the cause of a consistency fault.
func Recovered(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}

// IsFaultPanic is true if r, a value obtained from recover(), is a
// consistency fault raised by Fault. Such a panic has already been traced and
// the container repaired; it has to be propagated unchanged.
func IsFaultPanic(r any) bool {
	e, ok := r.(*Error)
	return ok && e.Kind == ConsistencyFault
}

// Violation creates an error of kind ConsistencyFault without tracing or
// panicking. Integrity checks use it to report what they found.
func Violation(op string, format string, args ...any) *Error {
	return &Error{Kind: ConsistencyFault, Op: op, Msg: fmt.Sprintf(format, args...)}
}
