/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package config

import (
	"errors"

	"github.com/openmeteo/dickinson/dates"
	"github.com/openmeteo/dickinson/event"
	"github.com/openmeteo/dickinson/interval"
	"github.com/openmeteo/dickinson/logx"
	"github.com/openmeteo/dickinson/series"
)

var (
	// ErrInvalidSeriesCount is returned when either minimum-count
	// threshold is less than 1.
	ErrInvalidSeriesCount = errors.New("ntimeseries threshold must be at least 1")
	// ErrInvalidTimeSeparator is returned when the time separator is
	// negative.
	ErrInvalidTimeSeparator = errors.New("time separator must not be negative")
	// ErrInvalidRange is returned when the requested range's end
	// precedes its start.
	ErrInvalidRange = errors.New("range end precedes range start")
)

// EventCriteria is the caller-facing, string-dated mirror of
// event.Criteria: every field here is exactly what a configuration text
// blob or a calling application would naturally hand in, with dates given
// as human strings rather than pre-computed epoch seconds.
type EventCriteria struct {
	Reverse                   bool
	StartThreshold            float64
	EndThreshold              float64
	NTimeseriesStartThreshold int
	NTimeseriesEndThreshold   int
	TimeSeparatorSeconds      int64
	RangeStart                string
	RangeEnd                  string
}

// Verify checks field-level constraints and that RangeStart/RangeEnd
// parse as dates with RangeStart <= RangeEnd.
func (c EventCriteria) Verify() error {
	if c.NTimeseriesStartThreshold < 1 || c.NTimeseriesEndThreshold < 1 {
		return ErrInvalidSeriesCount
	}
	if c.TimeSeparatorSeconds < 0 {
		return ErrInvalidTimeSeparator
	}
	_, _, err := c.resolveRange()
	return err
}

func (c EventCriteria) resolveRange() (series.Timestamp, series.Timestamp, error) {
	startBDT, err := dates.ParseDate(c.RangeStart)
	if err != nil {
		return 0, 0, err
	}
	endBDT, err := dates.ParseDate(c.RangeEnd)
	if err != nil {
		return 0, 0, err
	}
	start := series.Timestamp(dates.ToEpoch(startBDT))
	end := series.Timestamp(dates.ToEpoch(endBDT))
	if end < start {
		return 0, 0, ErrInvalidRange
	}
	return start, end, nil
}

// ToEventCriteria resolves the human date fields into epoch seconds and
// returns the event.Criteria the identifier actually consumes. Verify
// should be called first; ToEventCriteria re-validates the range as a
// matter of course since resolving it is unavoidable here too.
func (c EventCriteria) ToEventCriteria() (event.Criteria, error) {
	start, end, err := c.resolveRange()
	if err != nil {
		return event.Criteria{}, err
	}
	if c.NTimeseriesStartThreshold < 1 || c.NTimeseriesEndThreshold < 1 {
		return event.Criteria{}, ErrInvalidSeriesCount
	}
	if c.TimeSeparatorSeconds < 0 {
		return event.Criteria{}, ErrInvalidTimeSeparator
	}
	return event.Criteria{
		StartThreshold:        c.StartThreshold,
		EndThreshold:          c.EndThreshold,
		NSeriesStartThreshold: c.NTimeseriesStartThreshold,
		NSeriesEndThreshold:   c.NTimeseriesEndThreshold,
		TimeSeparator:         c.TimeSeparatorSeconds,
		RangeStart:            start,
		RangeEnd:              end,
		Reverse:               c.Reverse,
	}, nil
}

// Identify resolves c into an event.Criteria and runs the event
// identifier against list, optionally tracing state transitions to log
// (nil is a silent no-op, per logx's convention).
func (c EventCriteria) Identify(list *series.SeriesList, log *logx.Logger) (*interval.List, error) {
	ec, err := c.ToEventCriteria()
	if err != nil {
		return nil, err
	}
	ec.Log = log
	return event.Identify(list, ec)
}
