/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package event

import (
	"strings"
	"testing"

	"github.com/openmeteo/dickinson/logx"
	"github.com/openmeteo/dickinson/series"
)

func buildSeries(t *testing.T, samples map[series.Timestamp]float64) *series.Series {
	t.Helper()
	s := series.NewSeries()
	keys := make([]series.Timestamp, 0, len(samples))
	for k := range samples {
		keys = append(keys, k)
	}
	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			if keys[j] < keys[i] {
				keys[i], keys[j] = keys[j], keys[i]
			}
		}
	}
	for _, k := range keys {
		if err := s.Append(k, false, samples[k], ""); err != nil {
			t.Fatalf("Append(%d): %v", k, err)
		}
	}
	return s
}

// TestIdentifySingleSeries mirrors the spec's single-series worked
// example: hourly samples from 09:00 to 17:00, threshold 4, Ns=Ne=1,
// Delta=1 hour.
func TestIdentifySingleSeries(t *testing.T) {
	const hour = 3600
	const base series.Timestamp = 0 // treat 09:00 as t=0 for readability

	s := buildSeries(t, map[series.Timestamp]float64{
		base + 0*hour: 0, // 09:00
		base + 1*hour: 5, // 10:00
		base + 2*hour: 8, // 11:00
		base + 3*hour: 7, // 12:00
		base + 4*hour: 2, // 13:00
		base + 5*hour: 1, // 14:00
		base + 6*hour: 6, // 15:00
		base + 7*hour: 7, // 16:00
		base + 8*hour: 3, // 17:00
	})

	list := series.NewSeriesList()
	list.Append(s)

	c := Criteria{
		StartThreshold:        4,
		EndThreshold:          4,
		NSeriesStartThreshold: 1,
		NSeriesEndThreshold:   1,
		TimeSeparator:         hour,
		RangeStart:            base,
		RangeEnd:              base + 8*hour,
	}

	got, err := Identify(list, c)
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}
	if got.Len() != 2 {
		t.Fatalf("Len() = %d, want 2, intervals=%+v", got.Len(), got.All())
	}
	first, _ := got.At(0)
	second, _ := got.At(1)
	if first.Start != int64(base+1*hour) || first.End != int64(base+3*hour) {
		t.Errorf("first interval = %+v, want {10:00, 12:00}", first)
	}
	if second.Start != int64(base+6*hour) || second.End != int64(base+7*hour) {
		t.Errorf("second interval = %+v, want {15:00, 16:00}", second)
	}
}

// TestIdentifyMultiSeriesNeverSimultaneous mirrors the spec's multi-series
// example: two series each independently cross the threshold but never at
// the same timestamp, so requiring both (Ns=Ne=2) yields zero events.
func TestIdentifyMultiSeriesNeverSimultaneous(t *testing.T) {
	const hour = 3600

	a := buildSeries(t, map[series.Timestamp]float64{
		0 * hour: 20,
		1 * hour: 1,
		2 * hour: 1,
	})
	b := buildSeries(t, map[series.Timestamp]float64{
		0 * hour: 1,
		1 * hour: 20,
		2 * hour: 1,
	})

	list := series.NewSeriesList()
	list.Append(a)
	list.Append(b)

	c := Criteria{
		StartThreshold:        10,
		EndThreshold:          10,
		NSeriesStartThreshold: 2,
		NSeriesEndThreshold:   2,
		TimeSeparator:         hour,
		RangeStart:            0,
		RangeEnd:              2 * hour,
	}

	got, err := Identify(list, c)
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}
	if got.Len() != 0 {
		t.Errorf("Len() = %d, want 0, intervals=%+v", got.Len(), got.All())
	}
}

func TestIdentifyReverse(t *testing.T) {
	const hour = 3600
	s := buildSeries(t, map[series.Timestamp]float64{
		0 * hour: 10,
		1 * hour: 1, // crosses below threshold here
		2 * hour: 10,
	})
	list := series.NewSeriesList()
	list.Append(s)

	c := Criteria{
		StartThreshold:        5,
		EndThreshold:          5,
		NSeriesStartThreshold: 1,
		NSeriesEndThreshold:   1,
		TimeSeparator:         hour,
		RangeStart:            0,
		RangeEnd:              2 * hour,
		Reverse:               true,
	}
	got, err := Identify(list, c)
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}
	if got.Len() != 1 {
		t.Fatalf("Len() = %d, want 1, intervals=%+v", got.Len(), got.All())
	}
	iv, _ := got.At(0)
	if iv.Start != int64(hour) || iv.End != int64(hour) {
		t.Errorf("interval = %+v, want {%d, %d}", iv, hour, hour)
	}
}

// TestIdentifyLogsStateTransitions checks that a non-nil Criteria.Log
// receives DEBUG lines for the NotInEvent -> StartEvent and
// StartEvent -> InEvent transitions.
func TestIdentifyLogsStateTransitions(t *testing.T) {
	const hour = 3600
	s := buildSeries(t, map[series.Timestamp]float64{
		0 * hour: 0,
		1 * hour: 5,
		2 * hour: 0,
	})
	list := series.NewSeriesList()
	list.Append(s)

	var buf strings.Builder
	logger := logx.New(&buf)
	logger.SetLevel(logx.DEBUG)

	_, err := Identify(list, Criteria{
		StartThreshold:        4,
		EndThreshold:          4,
		NSeriesStartThreshold: 1,
		NSeriesEndThreshold:   1,
		TimeSeparator:         hour,
		RangeStart:            0,
		RangeEnd:              2 * hour,
		Log:                   logger,
	})
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "NotInEvent -> StartEvent") {
		t.Errorf("log output missing NotInEvent->StartEvent transition: %q", out)
	}
	if !strings.Contains(out, "StartEvent -> InEvent") {
		t.Errorf("log output missing StartEvent->InEvent transition: %q", out)
	}
}

func TestIdentifyEmptyRangeYieldsNoEvents(t *testing.T) {
	s := series.NewSeries()
	list := series.NewSeriesList()
	list.Append(s)

	got, err := Identify(list, Criteria{
		StartThreshold:        1,
		NSeriesStartThreshold: 1,
		RangeStart:            0,
		RangeEnd:              100,
	})
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}
	if got.Len() != 0 {
		t.Errorf("Len() = %d, want 0", got.Len())
	}
}
