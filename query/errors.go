package query

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownKey       = errors.New("file not in metadata table")
	ErrUnknownAttribute = errors.New("unknown attribute")
)

// UnknownKeyError reports a filename missing from the table
type UnknownKeyError struct {
	Path string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnknownKey, e.Path)
}

func (e *UnknownKeyError) Unwrap() error {
	return ErrUnknownKey
}
