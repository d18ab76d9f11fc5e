package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind tags a storage failure with the operation that produced it.
type Kind string

const (
	KindFetchFailed  Kind = "fetch-failed"
	KindCreateFailed Kind = "create-failed"
	KindUpdateFailed Kind = "update-failed"
	KindDeleteFailed Kind = "delete-failed"
	KindNotFound     Kind = "not-found"
	KindValidation   Kind = "validation"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrStorageFault  = errors.New("storage fault")
	ErrInvalidRecord = errors.New("invalid record")
)

// StorageError is returned by every repository operation that fails.
type StorageError struct {
	Kind   Kind
	Entity string
	ID     int
	Cause  error
}

func (e *StorageError) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
	case KindValidation:
		return fmt.Sprintf("%s: %v", e.Entity, e.Cause)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s %s: %v", e.Entity, e.Kind, e.Cause)
	}
	return fmt.Sprintf("%s %s", e.Entity, e.Kind)
}

// Is lets errors.Is match a StorageError against the package sentinels by kind.
func (e *StorageError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrInvalidRecord:
		return e.Kind == KindValidation
	case ErrStorageFault:
		return e.Kind != KindNotFound && e.Kind != KindValidation
	}
	return false
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

// StatusCode maps the kind to the HTTP status the controller layer answers with.
func (e *StorageError) StatusCode() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func NewStorageError(kind Kind, entity string, cause error) *StorageError {
	return &StorageError{Kind: kind, Entity: entity, Cause: cause}
}

func NewNotFound(entity string, id int) *StorageError {
	return &StorageError{Kind: KindNotFound, Entity: entity, ID: id}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsStorageFault(err error) bool {
	return errors.Is(err, ErrStorageFault)
}

// KindOf returns the kind of the first StorageError in err's chain, or "".
func KindOf(err error) Kind {
	var se *StorageError
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}
