package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrForbidden         = errors.New("forbidden")
	ErrAlreadyExists     = errors.New("already exists")
)

// IsValidation reports whether err belongs to the user-correctable input class
// (required, invalid or out-of-range values).
func IsValidation(err error) bool {
	return errors.Is(err, ErrValueIsRequired) ||
		errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsOutOfRange)
}

// ObjectNotFoundError reports that an entity addressed by ParamName/ID does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a malformed value.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsOutOfRange, e.ParamName, sanitize(e.Value), sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// NotAuthenticatedError reports bad credentials or an unusable session.
type NotAuthenticatedError struct {
	Reason string
	Cause  error
}

func NewNotAuthenticatedError(reason string) *NotAuthenticatedError {
	return &NotAuthenticatedError{Reason: reason}
}

func NewNotAuthenticatedErrorWithCause(reason string, cause error) *NotAuthenticatedError {
	return &NotAuthenticatedError{Reason: reason, Cause: cause}
}

func (e *NotAuthenticatedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrNotAuthenticated, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrNotAuthenticated, e.Reason)
}

func (e *NotAuthenticatedError) Unwrap() error {
	return ErrNotAuthenticated
}

// ForbiddenError reports an authenticated caller acting outside its permissions.
type ForbiddenError struct {
	Action string
	Cause  error
}

func NewForbiddenError(action string) *ForbiddenError {
	return &ForbiddenError{Action: action}
}

func NewForbiddenErrorWithCause(action string, cause error) *ForbiddenError {
	return &ForbiddenError{Action: action, Cause: cause}
}

func (e *ForbiddenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrForbidden, e.Action, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrForbidden, e.Action)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// AlreadyExistsError reports a uniqueness or integrity conflict.
type AlreadyExistsError struct {
	ParamName string
	Cause     error
}

func NewAlreadyExistsError(paramName string) *AlreadyExistsError {
	return &AlreadyExistsError{ParamName: paramName}
}

func NewAlreadyExistsErrorWithCause(paramName string, cause error) *AlreadyExistsError {
	return &AlreadyExistsError{ParamName: paramName, Cause: cause}
}

func (e *AlreadyExistsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrAlreadyExists, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrAlreadyExists, e.ParamName)
}

func (e *AlreadyExistsError) Unwrap() error {
	return ErrAlreadyExists
}

func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r", " "), "\n", " ")
}
