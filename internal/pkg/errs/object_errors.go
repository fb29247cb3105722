package errs

import (
	"errors"
	"fmt"
)

var (
	ErrObjectNotFound = errors.New("object not found")

	// ErrConflict is matched by every error that reports a clash with stored state.
	ErrConflict            = errors.New("conflict")
	ErrObjectAlreadyExists = errors.New("object already exists")
	ErrObjectIsReferenced  = errors.New("object is referenced")
)

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
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)", ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

type ObjectAlreadyExistsError struct {
	ParamName string
	Value     any
	Cause     error
}

func NewObjectAlreadyExistsError(paramName string, value any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, Value: value}
}

func NewObjectAlreadyExistsErrorWithCause(paramName string, value any, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *ObjectAlreadyExistsError) Error() string {
	return withCause(fmt.Sprintf("%s: %s is %s", ErrObjectAlreadyExists, e.ParamName, sanitize(e.Value)), e.Cause)
}

func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}

func (e *ObjectAlreadyExistsError) Is(target error) bool {
	return target == ErrConflict
}

// ObjectIsReferencedError reports a delete blocked by dependent rows.
type ObjectIsReferencedError struct {
	ParamName    string
	ID           any
	ReferencedBy string
	Count        int64
	Cause        error
}

func NewObjectIsReferencedError(paramName string, id any, referencedBy string, count int64) *ObjectIsReferencedError {
	return &ObjectIsReferencedError{ParamName: paramName, ID: id, ReferencedBy: referencedBy, Count: count}
}

func NewObjectIsReferencedErrorWithCause(paramName string, id any, referencedBy string, cause error) *ObjectIsReferencedError {
	return &ObjectIsReferencedError{ParamName: paramName, ID: id, ReferencedBy: referencedBy, Cause: cause}
}

func (e *ObjectIsReferencedError) Error() string {
	msg := fmt.Sprintf("%s: %s %v is referenced by %s", ErrObjectIsReferenced, e.ParamName, e.ID, e.ReferencedBy)
	if e.Count > 0 {
		msg = fmt.Sprintf("%s: %s %v is referenced by %d %s", ErrObjectIsReferenced, e.ParamName, e.ID, e.Count, e.ReferencedBy)
	}
	return withCause(msg, e.Cause)
}

func (e *ObjectIsReferencedError) Unwrap() error {
	return ErrObjectIsReferenced
}

func (e *ObjectIsReferencedError) Is(target error) bool {
	return target == ErrConflict
}
