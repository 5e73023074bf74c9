/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package series

import (
	"sort"

	"github.com/openmeteo/dickinson/errs"
)

// TimestampList is a sorted sequence of Timestamps with no payload. It
// obeys the same ordering (I1) and growth (I3) invariants as Series. (The
// event identifier builds its timestamp union in a Series, not in a
// TimestampList.)
type TimestampList struct {
	ts []Timestamp
}

// NewTimestampList returns an empty TimestampList.
func NewTimestampList() *TimestampList {
	return &TimestampList{}
}

// Len returns the number of timestamps held.
func (l *TimestampList) Len() int {
	return len(l.ts)
}

// Clear empties the list while keeping its backing capacity.
func (l *TimestampList) Clear() {
	l.ts = l.ts[:0]
}

// At returns the timestamp at index i.
func (l *TimestampList) At(i int) (Timestamp, error) {
	if i < 0 || i >= len(l.ts) {
		return 0, errs.ErrInvalidIndex
	}
	return l.ts[i], nil
}

// Append adds ts at the end; ts must be strictly greater than the current
// last timestamp, if any.
func (l *TimestampList) Append(ts Timestamp) error {
	if n := len(l.ts); n > 0 && ts <= l.ts[n-1] {
		return errs.ErrOutOfOrder
	}
	l.ts = append(l.ts, ts)
	return nil
}

// lowerBound returns the index of the first element with ts >= key, or
// len(l.ts) if none exists. This is the single binary search both
// GetNext and Insert are built on.
func (l *TimestampList) lowerBound(key Timestamp) int {
	return sort.Search(len(l.ts), func(i int) bool { return l.ts[i] >= key })
}

// GetNext returns the index of the first record with ts >= key, and true,
// or (0, false) if every record is smaller.
func (l *TimestampList) GetNext(key Timestamp) (int, bool) {
	i := l.lowerBound(key)
	if i >= len(l.ts) {
		return 0, false
	}
	return i, true
}

// GetPrev returns the index of the last record with ts <= key, and true,
// or (0, false) if every record is larger.
func (l *TimestampList) GetPrev(key Timestamp) (int, bool) {
	i := l.lowerBound(key)
	if i < len(l.ts) && l.ts[i] == key {
		return i, true
	}
	i--
	if i < 0 {
		return 0, false
	}
	return i, true
}

// Get returns the index of the record with ts == key, and true, or
// (0, false) if no such record exists.
func (l *TimestampList) Get(key Timestamp) (int, bool) {
	i := l.lowerBound(key)
	if i < len(l.ts) && l.ts[i] == key {
		return i, true
	}
	return 0, false
}

// Insert places ts at its sorted position. If a record already exists at
// ts, allowExisting controls whether that is treated as a (trivial)
// success or an AlreadyExists failure; a timestamp has no other payload to
// overwrite, so "overwrite" is a no-op here.
func (l *TimestampList) Insert(ts Timestamp, allowExisting bool) error {
	i := l.lowerBound(ts)
	if i < len(l.ts) && l.ts[i] == ts {
		if allowExisting {
			return nil
		}
		return errs.ErrAlreadyExists
	}
	l.ts = append(l.ts, 0)
	copy(l.ts[i+1:], l.ts[i:])
	l.ts[i] = ts
	return nil
}

// DeleteItem removes the record at index i.
func (l *TimestampList) DeleteItem(i int) error {
	if i < 0 || i >= len(l.ts) {
		return errs.ErrInvalidIndex
	}
	l.ts = append(l.ts[:i], l.ts[i+1:]...)
	return nil
}

// DeleteRecord removes the record with ts == key, returning its former
// index, or false if no such record existed.
func (l *TimestampList) DeleteRecord(key Timestamp) (int, bool) {
	i, ok := l.Get(key)
	if !ok {
		return 0, false
	}
	l.ts = append(l.ts[:i], l.ts[i+1:]...)
	return i, true
}

// DeleteRange removes every record with index in [r1, r2] inclusive and
// returns the index of the first remaining record at or after the
// deleted range.
func (l *TimestampList) DeleteRange(r1, r2 int) (int, error) {
	if r1 < 0 || r2 < r1 || r2 >= len(l.ts) {
		return 0, errs.ErrInvalidIndex
	}
	l.ts = append(l.ts[:r1], l.ts[r2+1:]...)
	return r1, nil
}
