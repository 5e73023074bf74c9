/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package event implements the event identification state machine: given
// a list of series and a pair of thresholds, it finds the maximal
// intervals during which enough series cross a start threshold to begin
// an event, and not enough cross an end threshold (within a grace period)
// to end it.
//
// original_source/ts.c encodes this state machine as a struct of function
// pointers reassigned on each transition; per the redesign called for in
// the Design Notes, this is reimplemented as a tagged enumeration
// dispatched by a plain loop.
package event

import (
	"github.com/openmeteo/dickinson/interval"
	"github.com/openmeteo/dickinson/logx"
	"github.com/openmeteo/dickinson/series"
)

// Criteria bundles the parameters that drive identification: start/end
// thresholds, the minimum count of series required to cross each one, the
// grace period separating two events, the direction of comparison, and
// the timestamp range to search within.
type Criteria struct {
	StartThreshold        float64
	EndThreshold          float64
	NSeriesStartThreshold int
	NSeriesEndThreshold   int
	TimeSeparator         int64 // seconds
	RangeStart, RangeEnd  series.Timestamp
	Reverse               bool

	// Log, if non-nil, receives a DEBUG line per state transition. A nil
	// Log is a no-op, matching logx's nil-safe Logger convention.
	Log *logx.Logger
}

// sign returns -1 when reverse is set (so that "crosses" becomes value <
// threshold), and +1 otherwise (value > threshold).
func sign(reverse bool) float64 {
	if reverse {
		return -1
	}
	return 1
}

// crossCount returns the number of series in list with a non-null record
// at ts whose (signed) value exceeds (signed) threshold.
func crossCount(list *series.SeriesList, ts series.Timestamp, threshold float64, sgn float64) int {
	n := 0
	for _, s := range list.All() {
		i, ok := s.Get(ts)
		if !ok {
			continue
		}
		r, err := s.At(i)
		if err != nil || r.Null {
			continue
		}
		if sgn*r.Value > sgn*threshold {
			n++
		}
	}
	return n
}

// state is the tagged enumeration replacing the source's function-pointer
// states.
type state int

const (
	notInEvent state = iota
	startEvent
	inEvent
	maybeEnd
	end
)

func (s state) String() string {
	switch s {
	case notInEvent:
		return "NotInEvent"
	case startEvent:
		return "StartEvent"
	case inEvent:
		return "InEvent"
	case maybeEnd:
		return "MaybeEnd"
	case end:
		return "End"
	}
	return "Unknown"
}

// Identify runs the state machine described in the package comment and
// returns the resulting list of non-overlapping, time-increasing
// intervals.
func Identify(list *series.SeriesList, c Criteria) (*interval.List, error) {
	out := interval.New()

	u := series.NewSeries()
	for _, s := range list.All() {
		if err := u.MergeAnyway(seriesTimestampsOnly(s)); err != nil {
			return nil, err
		}
	}

	lo, ok := u.GetNext(c.RangeStart)
	if !ok {
		return out, nil
	}
	hi, ok := u.GetPrev(c.RangeEnd)
	if !ok || hi < lo {
		return out, nil
	}
	// Trim the tail first so the head indices computed above stay valid.
	if hi+1 <= u.Len()-1 {
		if _, err := u.DeleteRange(hi+1, u.Len()-1); err != nil {
			return nil, err
		}
	}
	if lo > 0 {
		if _, err := u.DeleteRange(0, lo-1); err != nil {
			return nil, err
		}
	}
	if u.Len() == 0 {
		return out, nil
	}

	sgn := sign(c.Reverse)
	st := notInEvent
	cursor := 0
	var eventEndTS series.Timestamp

	for st != end {
		if cursor >= u.Len() {
			c.Log.Debugf("event: %s -> %s at end of timestamps", st, end)
			st = end
			continue
		}
		rec, err := u.At(cursor)
		if err != nil {
			return nil, err
		}
		ts := rec.TS

		prev := st
		switch st {
		case notInEvent:
			if crossCount(list, ts, c.StartThreshold, sgn) >= c.NSeriesStartThreshold {
				st = startEvent
			} else {
				cursor++
			}

		case startEvent:
			out.Append(int64(ts), int64(ts))
			eventEndTS = ts
			st = inEvent

		case inEvent:
			if crossCount(list, ts, c.EndThreshold, sgn) < c.NSeriesEndThreshold {
				st = maybeEnd
			} else {
				out.SetLastEnd(int64(ts))
				eventEndTS = ts
				cursor++
			}

		case maybeEnd:
			if crossCount(list, ts, c.EndThreshold, sgn) >= c.NSeriesEndThreshold {
				st = inEvent
			} else {
				cursor++
				if cursor >= u.Len() {
					st = end
					c.Log.Debugf("event: %s -> %s at ts=%d", prev, st, ts)
					continue
				}
				nextRec, err := u.At(cursor)
				if err != nil {
					return nil, err
				}
				if int64(nextRec.TS-eventEndTS) >= c.TimeSeparator {
					st = notInEvent
				}
			}
		}
		if st != prev {
			c.Log.Debugf("event: %s -> %s at ts=%d", prev, st, ts)
		}
	}

	return out, nil
}

// seriesTimestampsOnly returns a Series holding only s's timestamps, with
// null payload values, suitable for building the timestamp union U:
// values are irrelevant to U, only the set of sampled instants matters.
func seriesTimestampsOnly(s *series.Series) *series.Series {
	out := series.NewSeries()
	for i := 0; i < s.Len(); i++ {
		r, err := s.At(i)
		if err != nil {
			continue
		}
		_ = out.Append(r.TS, true, 0, "")
	}
	return out
}
