package domain

import (
	"errors"
	"fmt"
)

// StorageError carries the failed store operation and its cause
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: failed to %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// PlatformErrorKind classifies a messaging platform failure
type PlatformErrorKind int

const (
	PlatformOther PlatformErrorKind = iota
	PlatformChatNotFound
	PlatformUserNotFound
	PlatformPermissionDenied
)

func (k PlatformErrorKind) String() string {
	switch k {
	case PlatformChatNotFound:
		return "chat_not_found"
	case PlatformUserNotFound:
		return "user_not_found"
	case PlatformPermissionDenied:
		return "permission_denied"
	default:
		return "other"
	}
}

// PlatformError is returned by every Platform method
type PlatformError struct {
	Kind PlatformErrorKind
	Err  error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("platform %s: %v", e.Kind, e.Err)
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}

// ClassifyPlatformError returns the kind carried by err. Errors that are not
// a *PlatformError (timeouts, transport failures) are PlatformOther.
func ClassifyPlatformError(err error) PlatformErrorKind {
	var pe *PlatformError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return PlatformOther
}
