package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrIO marks read and write failures of the backing store.
	ErrIO = errors.New("storage i/o error")
	// ErrParse marks a persisted document that could not be decoded.
	ErrParse = errors.New("malformed recipe document")
	// ErrNotExist is returned by a BlobStore when nothing is stored at a location.
	ErrNotExist = errors.New("document does not exist")
)

// OpError describes a failed load or save. It matches both its Kind (ErrIO
// or ErrParse) and the underlying cause with errors.Is.
type OpError struct {
	Op       string
	Location string
	Kind     error
	Err      error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Location, e.Err)
}

func (e *OpError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func ioError(op, location string, err error) error {
	return &OpError{Op: op, Location: location, Kind: ErrIO, Err: err}
}

func parseError(location string, err error) error {
	return &OpError{Op: "parse", Location: location, Kind: ErrParse, Err: err}
}
