/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package interval holds the growable list of time intervals the event
// identifier produces. It carries no ordering invariant of its own (the
// state machine that fills it happens to produce non-overlapping,
// increasing intervals, but List does not enforce that).
package interval

import "github.com/openmeteo/dickinson/errs"

// Interval is a closed range [Start, End] of epoch seconds. Start <= End
// for any interval the event identifier emits; List itself does not check
// this.
type Interval struct {
	Start int64
	End   int64
}

// List is a growable, unordered sequence of Intervals, grounded on
// original_source/dates.h's il_create/il_append/il_delete trio.
type List struct {
	items []Interval
}

// New returns an empty interval list.
func New() *List {
	return &List{}
}

// Len returns the number of intervals currently held.
func (l *List) Len() int {
	return len(l.items)
}

// At returns the interval at index i.
func (l *List) At(i int) (Interval, error) {
	if i < 0 || i >= len(l.items) {
		return Interval{}, errs.ErrInvalidIndex
	}
	return l.items[i], nil
}

// Append adds a new interval to the end of the list.
func (l *List) Append(start, end int64) {
	l.items = append(l.items, Interval{Start: start, End: end})
}

// SetLastEnd mutates the end timestamp of the last appended interval; used
// by the event identifier's InEvent state to extend the current event as
// new samples satisfy it.
func (l *List) SetLastEnd(end int64) {
	if n := len(l.items); n > 0 {
		l.items[n-1].End = end
	}
}

// LastEnd returns the end timestamp of the last appended interval. The
// second return value is false if the list is empty.
func (l *List) LastEnd() (int64, bool) {
	if n := len(l.items); n > 0 {
		return l.items[n-1].End, true
	}
	return 0, false
}

// Delete removes the interval at index i, shifting the tail left.
func (l *List) Delete(i int) error {
	if i < 0 || i >= len(l.items) {
		return errs.ErrInvalidIndex
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return nil
}

// All returns a copy of every interval currently held, in list order.
func (l *List) All() []Interval {
	out := make([]Interval, len(l.items))
	copy(out, l.items)
	return out
}
