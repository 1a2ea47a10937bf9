package result

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Code classifies the outcome of an operation. Every error produced by this module carries one.
type Code int32

const (
	Success Code = iota
	RuntimeError
	ArgumentOutOfRange
	OutOfMemory
	FeatureNotPresent
	Timeout
	NotReady
	OutOfDate
	Suboptimal
)

var codeMapping = make(map[Code]string)

func init() {
	codeMapping[Success] = "Success"
	codeMapping[RuntimeError] = "RuntimeError"
	codeMapping[ArgumentOutOfRange] = "ArgumentOutOfRange"
	codeMapping[OutOfMemory] = "OutOfMemory"
	codeMapping[FeatureNotPresent] = "FeatureNotPresent"
	codeMapping[Timeout] = "Timeout"
	codeMapping[NotReady] = "NotReady"
	codeMapping[OutOfDate] = "OutOfDate"
	codeMapping[Suboptimal] = "Suboptimal"
}

func (c Code) String() string {
	str, ok := codeMapping[c]
	if !ok {
		return "unknown"
	}
	return str
}

// Error pairs a Code with a human-readable message. It may wrap a cause.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	switch {
	case e.Message == "" && e.cause == nil:
		return e.Code.String()
	case e.cause == nil:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	case e.Message == "":
		return fmt.Sprintf("%s: %v", e.Code, e.cause)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches sentinel errors: a target with no message matches any Error of the same Code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Message != "" && t.Message != e.Message {
		return false
	}
	return t.Code == e.Code
}

var (
	ErrRuntime            = &Error{Code: RuntimeError}
	ErrArgumentOutOfRange = &Error{Code: ArgumentOutOfRange}
	ErrOutOfMemory        = &Error{Code: OutOfMemory}
	ErrFeatureNotPresent  = &Error{Code: FeatureNotPresent}
	ErrTimeout            = &Error{Code: Timeout}
	ErrNotReady           = &Error{Code: NotReady}
	ErrOutOfDate          = &Error{Code: OutOfDate}
	ErrSuboptimal         = &Error{Code: Suboptimal}
)

// New builds an error with a stack trace attached at the caller.
func New(code Code, message string) error {
	return errors.WithStackDepth(&Error{Code: code, Message: message}, 1)
}

func Newf(code Code, format string, args ...any) error {
	return errors.WithStackDepth(&Error{Code: code, Message: fmt.Sprintf(format, args...)}, 1)
}

// Wrap attaches a Code to an existing error. A nil err yields nil.
func Wrap(err error, code Code, message string) error {
	if err == nil {
		return nil
	}
	return errors.WithStackDepth(&Error{Code: code, Message: message, cause: err}, 1)
}

func Wrapf(err error, code Code, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return errors.WithStackDepth(&Error{Code: code, Message: fmt.Sprintf(format, args...), cause: err}, 1)
}

// CodeOf extracts the Code of err. nil is Success and foreign errors are RuntimeError.
func CodeOf(err error) Code {
	if err == nil {
		return Success
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return RuntimeError
}

// MessageOf returns the message of the outermost Error in err's chain, or err's text.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return err.Error()
}

// Expected holds either a value or the error that prevented producing it.
type Expected[T any] struct {
	value T
	err   error
}

func Ok[T any](value T) Expected[T] {
	return Expected[T]{value: value}
}

func Fail[T any](err error) Expected[T] {
	if err == nil {
		err = New(RuntimeError, "expected constructed from a nil error")
	}
	return Expected[T]{err: err}
}

// From adapts a Go (value, error) pair.
func From[T any](value T, err error) Expected[T] {
	if err != nil {
		return Expected[T]{err: err}
	}
	return Expected[T]{value: value}
}

func (e Expected[T]) Success() bool {
	return e.err == nil
}

func (e Expected[T]) Err() error {
	return e.err
}

func (e Expected[T]) Code() Code {
	return CodeOf(e.err)
}

// Value returns the held value. It returns the zero value when the Expected holds an error.
func (e Expected[T]) Value() T {
	return e.value
}

func (e Expected[T]) ValueOr(fallback T) T {
	if e.err != nil {
		return fallback
	}
	return e.value
}

func (e Expected[T]) Unpack() (T, error) {
	return e.value, e.err
}
