package theme

import (
	"errors"
	"fmt"
)

var (
	// ErrNotPointer is returned when the decode target is not a non-nil pointer.
	ErrNotPointer = errors.New("theme: decode target must be a non-nil pointer")
	// ErrNotStruct is returned when the decode target does not point to a struct.
	ErrNotStruct = errors.New("theme: decode target must point to a struct")
	// ErrNoStyle is returned by StyleOf when no style lives at a path.
	ErrNoStyle = errors.New("theme: no style at path")
)

// FieldError attaches the dotted document path of the failing field.
type FieldError struct {
	Path string
	Err  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("theme: %s: %v", e.Path, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldErr(path string, err error) error {
	var ferr *FieldError
	if errors.As(err, &ferr) {
		return err
	}
	return &FieldError{Path: path, Err: err}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
