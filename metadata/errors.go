package metadata

import (
	"errors"
	"fmt"
)

var ErrMalformedFilename = errors.New("malformed filename")

// MalformedFilenameError reports a file whose stem does not normalise into
// speaker-gender-language-item
type MalformedFilenameError struct {
	Path   string
	Stem   string
	Fields []string
}

func (e *MalformedFilenameError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: stem %q split into %d fields %q", ErrMalformedFilename, e.Stem, len(e.Fields), e.Fields)
	}
	return fmt.Sprintf("%s %s: stem %q split into %d fields %q", ErrMalformedFilename, e.Path, e.Stem, len(e.Fields), e.Fields)
}

func (e *MalformedFilenameError) Unwrap() error {
	return ErrMalformedFilename
}
