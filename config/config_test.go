/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package config

import (
	"testing"

	"github.com/openmeteo/dickinson/linecodec"
	"github.com/openmeteo/dickinson/series"
)

func TestWriteOptionsVerify(t *testing.T) {
	cases := []struct {
		precision int
		wantErr   bool
	}{
		{0, false},
		{17, false},
		{linecodec.PrecisionAuto, false},
		{-1, true},
		{18, true},
	}
	for _, c := range cases {
		err := WriteOptions{Precision: c.precision}.Verify()
		if (err != nil) != c.wantErr {
			t.Errorf("Verify(precision=%d) = %v, wantErr=%v", c.precision, err, c.wantErr)
		}
	}
}

func TestWriteOptionsFormatRecord(t *testing.T) {
	r := series.Record{TS: 1262304000, Value: 3.14, Flags: "GOOD FLAG"}
	line, err := WriteOptions{Precision: 2}.FormatRecord(r)
	if err != nil {
		t.Fatalf("FormatRecord: %v", err)
	}
	if line != "2010-01-01 00:00,3.14,GOOD FLAG\r\n" {
		t.Errorf("FormatRecord = %q", line)
	}

	if _, err := (WriteOptions{Precision: 99}).FormatRecord(r); err != ErrInvalidPrecision {
		t.Errorf("FormatRecord(bad precision) = %v, want ErrInvalidPrecision", err)
	}
}

func TestWriteOptionsFormatRange(t *testing.T) {
	s := series.NewSeries()
	_ = s.Append(1262304000, false, 1, "A")
	_ = s.Append(1262304600, false, 2, "B")

	out, err := WriteOptions{Precision: 0}.FormatRange(s, series.TimestampMin, series.TimestampMax)
	if err != nil {
		t.Fatalf("FormatRange: %v", err)
	}
	want := "2010-01-01 00:00,1,A\r\n2010-01-01 00:10,2,B\r\n"
	if out != want {
		t.Errorf("FormatRange = %q, want %q", out, want)
	}
}

func TestEventCriteriaVerify(t *testing.T) {
	valid := EventCriteria{
		NTimeseriesStartThreshold: 1,
		NTimeseriesEndThreshold:   1,
		TimeSeparatorSeconds:      3600,
		RangeStart:                "2010-01-01",
		RangeEnd:                  "2010-12-31",
	}
	if err := valid.Verify(); err != nil {
		t.Fatalf("Verify(valid) = %v", err)
	}

	bad := valid
	bad.NTimeseriesStartThreshold = 0
	if err := bad.Verify(); err != ErrInvalidSeriesCount {
		t.Errorf("Verify(ns=0) = %v, want ErrInvalidSeriesCount", err)
	}

	bad = valid
	bad.TimeSeparatorSeconds = -1
	if err := bad.Verify(); err != ErrInvalidTimeSeparator {
		t.Errorf("Verify(negative separator) = %v, want ErrInvalidTimeSeparator", err)
	}

	bad = valid
	bad.RangeStart, bad.RangeEnd = "2010-12-31", "2010-01-01"
	if err := bad.Verify(); err != ErrInvalidRange {
		t.Errorf("Verify(inverted range) = %v, want ErrInvalidRange", err)
	}
}

func TestEventCriteriaToEventCriteria(t *testing.T) {
	c := EventCriteria{
		StartThreshold:            4,
		EndThreshold:              4,
		NTimeseriesStartThreshold: 1,
		NTimeseriesEndThreshold:   1,
		TimeSeparatorSeconds:      3600,
		RangeStart:                "2010-01-01",
		RangeEnd:                  "2010-01-02",
	}
	ec, err := c.ToEventCriteria()
	if err != nil {
		t.Fatalf("ToEventCriteria: %v", err)
	}
	if ec.RangeEnd <= ec.RangeStart {
		t.Errorf("resolved range not increasing: %+v", ec)
	}
}

func TestEventCriteriaIdentify(t *testing.T) {
	s := series.NewSeries()
	_ = s.Append(0, false, 1, "")
	_ = s.Append(3600, false, 10, "")
	_ = s.Append(7200, false, 1, "")

	list := series.NewSeriesList()
	list.Append(s)

	c := EventCriteria{
		StartThreshold:            5,
		EndThreshold:              5,
		NTimeseriesStartThreshold: 1,
		NTimeseriesEndThreshold:   1,
		TimeSeparatorSeconds:      3600,
		RangeStart:                "1970-01-01",
		RangeEnd:                  "1970-01-02",
	}
	got, err := c.Identify(list, nil)
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}
	if got.Len() != 1 {
		t.Fatalf("Len() = %d, want 1, intervals=%+v", got.Len(), got.All())
	}
}

func TestParseEventCriteria(t *testing.T) {
	text := `
[criteria]
reverse = false
start-threshold = 4
end-threshold = 4
n-series-start = 1
n-series-end = 1
time-separator = 3600
range-start = 2010-01-01
range-end = 2010-12-31
`
	c, err := ParseEventCriteria(text)
	if err != nil {
		t.Fatalf("ParseEventCriteria: %v", err)
	}
	if c.StartThreshold != 4 || c.NTimeseriesStartThreshold != 1 || c.TimeSeparatorSeconds != 3600 {
		t.Errorf("parsed criteria = %+v", c)
	}
}

func TestParseEventCriteriaInvalid(t *testing.T) {
	text := `
[criteria]
n-series-start = 0
n-series-end = 1
range-start = 2010-01-01
range-end = 2010-12-31
`
	if _, err := ParseEventCriteria(text); err != ErrInvalidSeriesCount {
		t.Errorf("ParseEventCriteria(invalid) = %v, want ErrInvalidSeriesCount", err)
	}
}
