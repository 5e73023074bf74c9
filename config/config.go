/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package config holds the per-call option structs this library accepts,
// each with a Verify() error method in the teacher's IngestConfig idiom:
// named sentinel errors, no environment variables, no file I/O. Unlike
// the teacher, these structs are passed explicitly by the caller on every
// call rather than loaded once at process start, per this library's
// "no global state, no persisted configuration" contract.
package config

import (
	"errors"

	"github.com/openmeteo/dickinson/linecodec"
	"github.com/openmeteo/dickinson/series"
)

var (
	// ErrInvalidPrecision is returned by WriteOptions.Verify when
	// Precision is neither linecodec.PrecisionAuto nor in [0, 17].
	ErrInvalidPrecision = errors.New("invalid precision")
)

// WriteOptions configures the line writer.
type WriteOptions struct {
	// Precision selects fixed decimal digits in [0, 17], or
	// linecodec.PrecisionAuto for "%G"-equivalent formatting.
	Precision int
}

// Verify checks Precision is in the accepted range.
func (w WriteOptions) Verify() error {
	if w.Precision == linecodec.PrecisionAuto {
		return nil
	}
	if w.Precision < 0 || w.Precision > 17 {
		return ErrInvalidPrecision
	}
	return nil
}

// FormatRecord validates w and formats r the way linecodec.FormatLine
// does, sparing the caller from having to unpack Precision by hand.
func (w WriteOptions) FormatRecord(r series.Record) (string, error) {
	if err := w.Verify(); err != nil {
		return "", err
	}
	return linecodec.FormatLine(r, w.Precision), nil
}

// FormatRange validates w and formats every record of s in
// [start, end] the way linecodec.WriteRange does.
func (w WriteOptions) FormatRange(s *series.Series, start, end series.Timestamp) (string, error) {
	if err := w.Verify(); err != nil {
		return "", err
	}
	return linecodec.WriteRange(s, start, end, w.Precision), nil
}
