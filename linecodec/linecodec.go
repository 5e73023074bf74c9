/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package linecodec parses and formats the DATE,VALUE,FLAGS line format
// that feeds a series.Series, and reads or writes whole strings of such
// lines the way original_source/ts.c's ts_readline/ts_readfromstring/
// ts_write do. Input is taken as a string only; there is no entry point
// that reads from a file or an io.Reader.
package linecodec

import (
	"strconv"
	"strings"

	"github.com/openmeteo/dickinson/csvline"
	"github.com/openmeteo/dickinson/dates"
	"github.com/openmeteo/dickinson/errs"
	"github.com/openmeteo/dickinson/series"
)

// maxLineLength is the maximum line length, including its terminator,
// that ReadAll will accept before failing with errs.ErrLineTooLong.
const maxLineLength = 255

// PrecisionAuto selects "%G"-style formatting (six significant digits,
// trailing zeros dropped) instead of a fixed decimal precision, the
// sentinel original_source/ts.c spells as -9999.
const PrecisionAuto = -9999

// ParseLine parses one DATE,VALUE,FLAGS line (without its terminator) into
// a timestamp, null flag, value, and flags string.
func ParseLine(line string) (ts series.Timestamp, null bool, value float64, flags string, err error) {
	tok := csvline.NewTokenizer(line)

	dateField, ok := tok.Next()
	if !ok {
		return 0, false, 0, "", errs.ErrInvalidSyntax
	}
	bdt, perr := dates.ParseDate(strings.TrimSpace(dateField))
	if perr != nil {
		return 0, false, 0, "", perr
	}
	ts = series.Timestamp(dates.ToEpoch(bdt))

	valueField, ok := tok.Next()
	if !ok {
		return 0, false, 0, "", errs.ErrInvalidSyntax
	}
	valueField = strings.TrimSpace(valueField)
	if valueField == "" {
		null = true
	} else {
		v, perr := strconv.ParseFloat(valueField, 64)
		if perr != nil {
			return 0, false, 0, "", errs.ErrInvalidFloat
		}
		value = v
	}

	if flagsField, ok := tok.Next(); ok {
		flags = strings.TrimSpace(flagsField)
		if _, more := tok.Next(); more {
			return 0, false, 0, "", errs.ErrInvalidSyntax
		}
	}

	return ts, null, value, flags, nil
}

// ReadLineInto parses line and inserts the resulting record into s with
// allowExisting semantics, as ts_readline does via ts_insert_record.
func ReadLineInto(s *series.Series, line string) error {
	ts, null, value, flags, err := ParseLine(line)
	if err != nil {
		return err
	}
	return s.Insert(ts, null, value, flags, true)
}

// ReadAll reads every line of text into s, splitting on "\n" or "\r\n".
// Each line (including its terminator) must not exceed maxLineLength
// bytes; a line with no terminator within that bound fails with
// errs.ErrLineTooLong. On any per-line failure, ReadAll returns that error
// wrapped with its 1-based line number via errs.AtLine.
func ReadAll(s *series.Series, text string) error {
	lineNo := 0
	for len(text) > 0 {
		nl := strings.IndexByte(text, '\n')
		var raw string
		if nl < 0 {
			raw = text
			text = ""
			if len(raw) > maxLineLength {
				return errs.AtLine(lineNo+1, errs.ErrLineTooLong)
			}
		} else {
			raw = text[:nl]
			text = text[nl+1:]
			if nl+1 > maxLineLength {
				return errs.AtLine(lineNo+1, errs.ErrLineTooLong)
			}
		}
		lineNo++
		line := strings.TrimSuffix(raw, "\r")
		if line == "" && nl < 0 {
			break
		}
		if err := ReadLineInto(s, line); err != nil {
			return errs.AtLine(lineNo, err)
		}
	}
	return nil
}

// FormatLine formats one record as DATE,VALUE,FLAGS\r\n. precision selects
// fixed decimal digits in [0, 17], or PrecisionAuto for "%G"-equivalent
// output. FLAGS is passed through csvline.Quote, so flags containing ','
// or '"' are written quoted and read back unchanged.
func FormatLine(r series.Record, precision int) string {
	bdt := dates.FromEpoch(int64(r.TS))
	var b strings.Builder
	b.WriteString(formatDate(bdt))
	b.WriteByte(',')
	if !r.Null {
		b.WriteString(formatValue(r.Value, precision))
	}
	b.WriteByte(',')
	b.WriteString(csvline.Quote(r.Flags))
	b.WriteString("\r\n")
	return b.String()
}

// formatDate mirrors strftime's "%Y-%m-%d %H:%M": the year is emitted
// without zero-padding (glibc's %Y does not pad), unlike month/day/hour/
// minute which are always two digits.
func formatDate(t dates.BrokenDownTime) string {
	return strconv.Itoa(t.Year) + "-" + pad2(t.Month) + "-" + pad2(t.Day) + " " + pad2(t.Hour) + ":" + pad2(t.Minute)
}

func pad2(v int) string {
	s := strconv.Itoa(v)
	if len(s) < 2 {
		return "0" + s
	}
	return s
}

func formatValue(value float64, precision int) string {
	if precision == PrecisionAuto {
		return strconv.FormatFloat(value, 'G', 6, 64)
	}
	if precision < 0 {
		precision = 0
	}
	if precision > 17 {
		precision = 17
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// WriteRange formats every record in [get_next(start), get_prev(end)] into
// one string, in the style of ts_write's heap-grown output buffer.
func WriteRange(s *series.Series, start, end series.Timestamp, precision int) string {
	lo, ok := s.GetNext(start)
	if !ok {
		return ""
	}
	hi, ok := s.GetPrev(end)
	if !ok || hi < lo {
		return ""
	}
	var b strings.Builder
	for i := lo; i <= hi; i++ {
		r, err := s.At(i)
		if err != nil {
			break
		}
		b.WriteString(FormatLine(r, precision))
	}
	return b.String()
}
