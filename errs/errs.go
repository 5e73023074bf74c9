/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package errs defines the closed set of sentinel errors returned by the
// series, interval, dates, linecodec and event packages of this module
// (config and logx define their own validation errors), plus a LineError
// wrapper that attaches a 1-based
// line number to a failure encountered while reading a file or string of
// records.
package errs

import (
	"errors"
	"fmt"
)

// The closed error taxonomy. Every fallible operation in the packages
// named above returns one of these, or nil, or an error that wraps one of
// these via errors.Is.
var (
	// ErrOutOfMemory marks an allocation failure. Go recovers from most of
	// these as a runtime panic rather than a returned error; it is kept in
	// the taxonomy for the "should-not-happen guard" paths that can
	// plausibly return it (e.g. a caller-supplied buffer that can't grow).
	ErrOutOfMemory = errors.New("out of memory")

	// ErrOutOfOrder is returned by Append when the new timestamp is not
	// strictly greater than the container's last timestamp.
	ErrOutOfOrder = errors.New("record out of order")

	// ErrAlreadyExists is returned by Insert when a record already exists
	// at the given timestamp and the caller disallowed overwriting.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrIntermixing is returned by Merge when the incoming block would
	// need to interleave with the target's existing records.
	ErrIntermixing = errors.New("no record intermixing allowed when merging time series")

	// ErrOverwriting is returned by Merge when the incoming block's first
	// or last timestamp collides with an existing record.
	ErrOverwriting = errors.New("no record overwriting allowed when merging time series")

	// ErrInvalidIndex is returned when an index falls outside [0, len).
	ErrInvalidIndex = errors.New("invalid index")

	// ErrInvalidDate is returned when a date string matches none of the
	// accepted patterns.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidFloat is returned when a value field has trailing garbage
	// after the parsed float.
	ErrInvalidFloat = errors.New("invalid floating point value")

	// ErrInvalidSyntax is returned when a line has the wrong field count.
	ErrInvalidSyntax = errors.New("invalid syntax")

	// ErrLineTooLong is returned when a line exceeds the maximum line
	// length without a terminator.
	ErrLineTooLong = errors.New("line too long or unterminated")

	// ErrInternal marks a should-not-happen guard, e.g. a failed internal
	// trim of the event identifier's timestamp union.
	ErrInternal = errors.New("internal error")
)

// LineError wraps one of the sentinel errors above with the 1-based line
// number of the record that failed to parse.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// AtLine wraps err with a line number, unless err is nil.
func AtLine(line int, err error) error {
	if err == nil {
		return nil
	}
	return &LineError{Line: line, Err: err}
}
