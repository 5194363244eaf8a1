package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation       = errors.New("missing required fields")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrAlreadyCancelled = errors.New("order is already cancelled")
)

// StorageCorruptError reports a collection that exists but cannot be decoded.
type StorageCorruptError struct {
	Collection string
	Err        error
}

func (e *StorageCorruptError) Error() string {
	return fmt.Sprintf("collection %s is corrupt: %v", e.Collection, e.Err)
}

func (e *StorageCorruptError) Unwrap() error { return e.Err }

// StorageWriteError reports a failed collection write.
type StorageWriteError struct {
	Collection string
	Err        error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("collection %s write error: %v", e.Collection, e.Err)
}

func (e *StorageWriteError) Unwrap() error { return e.Err }

// NotificationError reports a failed mail dispatch, carrying the underlying
// cause. Whether it is fatal to the overall operation is the caller's call.
type NotificationError struct {
	Err error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("notification send error: %v", e.Err)
}

func (e *NotificationError) Unwrap() error { return e.Err }
