package apperror

import (
	"errors"
	"fmt"
)

// ValidationError blocks the initiating action and is shown to the user as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func Validation(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func NotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

// NetworkError wraps a failed call to an external collaborator (store, AI endpoint, mail).
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func Network(op string, err error) error {
	if err == nil {
		return nil
	}
	return &NetworkError{Op: op, Err: err}
}

// DataError marks a single malformed stored value. Callers skip the value.
type DataError struct {
	Value string
	Err   error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("malformed value %q: %v", e.Value, e.Err)
}

func (e *DataError) Unwrap() error {
	return e.Err
}

func Data(value string, err error) error {
	return &DataError{Value: value, Err: err}
}

func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsNetwork(err error) bool {
	var e *NetworkError
	return errors.As(err, &e)
}

func IsData(err error) bool {
	var e *DataError
	return errors.As(err, &e)
}
