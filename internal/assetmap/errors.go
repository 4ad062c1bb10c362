package assetmap

import (
	"errors"
	"fmt"
)

var (
	// ErrFilesystem is the sentinel wrapped by FilesystemError.
	ErrFilesystem = errors.New("filesystem error")
	// ErrKeyConflict is the sentinel wrapped by KeyConflictError.
	ErrKeyConflict = errors.New("key conflict")
)

type (
	// FilesystemError reports a failed listing, stat or write. It wraps both
	// ErrFilesystem and the underlying cause.
	FilesystemError struct {
		Op   string
		Path string
		Err  error
	}

	// KeyConflictError is returned by a strict walk when a filename normalizes
	// to an empty key or to a key that already exists at its level.
	KeyConflictError struct {
		Degenerate Degenerate
	}
)

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns ErrFilesystem and the underlying cause.
func (e *FilesystemError) Unwrap() []error {
	return []error{ErrFilesystem, e.Err}
}

func (e *KeyConflictError) Error() string {
	return e.Degenerate.String()
}

// Unwrap returns ErrKeyConflict for errors.Is() compatibility.
func (e *KeyConflictError) Unwrap() error {
	return ErrKeyConflict
}
