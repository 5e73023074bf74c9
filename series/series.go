/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package series

import (
	"math"
	"sort"

	"github.com/openmeteo/dickinson/errs"
)

// Record is one sample of a Series: a timestamp, an optional value, and a
// free-form flags string. A Record handed out by a getter is a copy, not a
// live view, so unlike the source library's raw-pointer views it survives
// a subsequent mutation of the Series it came from — but it is already
// stale at that point and should be treated as such by callers that care
// about (I2)/(I3) semantics, per the invalidation rule in §5.
type Record struct {
	TS    Timestamp
	Null  bool
	Value float64
	Flags string
}

// Series is a sorted-by-timestamp sequence of Records. It is the core
// container this library builds on: strictly increasing timestamps (I1),
// flags strings owned by their record (I2, trivially true for Go string
// values), and amortized O(1) append growth via the slice's own geometric
// reallocation (I3, per the Design Notes' allowance for non-chunked
// growth).
type Series struct {
	records []Record
}

// NewSeries returns an empty Series.
func NewSeries() *Series {
	return &Series{}
}

// Len returns the number of records held.
func (s *Series) Len() int {
	return len(s.records)
}

// Clear empties the series while keeping its backing capacity.
func (s *Series) Clear() {
	s.records = s.records[:0]
}

// At returns a copy of the record at index i.
func (s *Series) At(i int) (Record, error) {
	if i < 0 || i >= len(s.records) {
		return Record{}, errs.ErrInvalidIndex
	}
	return s.records[i], nil
}

func (s *Series) lowerBound(key Timestamp) int {
	return sort.Search(len(s.records), func(i int) bool { return s.records[i].TS >= key })
}

// GetNext returns the index of the first record with ts >= key.
func (s *Series) GetNext(key Timestamp) (int, bool) {
	i := s.lowerBound(key)
	if i >= len(s.records) {
		return 0, false
	}
	return i, true
}

// GetPrev returns the index of the last record with ts <= key.
func (s *Series) GetPrev(key Timestamp) (int, bool) {
	i := s.lowerBound(key)
	if i < len(s.records) && s.records[i].TS == key {
		return i, true
	}
	i--
	if i < 0 {
		return 0, false
	}
	return i, true
}

// Get returns the index of the record with ts == key.
func (s *Series) Get(key Timestamp) (int, bool) {
	i := s.lowerBound(key)
	if i < len(s.records) && s.records[i].TS == key {
		return i, true
	}
	return 0, false
}

// Append adds a record at the end; ts must be strictly greater than the
// current last timestamp, if any.
func (s *Series) Append(ts Timestamp, null bool, value float64, flags string) error {
	if n := len(s.records); n > 0 && ts <= s.records[n-1].TS {
		return errs.ErrOutOfOrder
	}
	s.records = append(s.records, Record{TS: ts, Null: null, Value: value, Flags: flags})
	return nil
}

// Insert places a record at its sorted position. If a record already
// exists at ts: when allowExisting is true its payload is overwritten;
// otherwise Insert fails with AlreadyExists.
func (s *Series) Insert(ts Timestamp, null bool, value float64, flags string, allowExisting bool) error {
	i := s.lowerBound(ts)
	if i < len(s.records) && s.records[i].TS == ts {
		if !allowExisting {
			return errs.ErrAlreadyExists
		}
		s.records[i].Null = null
		s.records[i].Value = value
		s.records[i].Flags = flags
		return nil
	}
	s.records = append(s.records, Record{})
	copy(s.records[i+1:], s.records[i:])
	s.records[i] = Record{TS: ts, Null: null, Value: value, Flags: flags}
	return nil
}

// SetItem replaces the payload of the record at index i.
func (s *Series) SetItem(i int, null bool, value float64, flags string) error {
	if i < 0 || i >= len(s.records) {
		return errs.ErrInvalidIndex
	}
	s.records[i].Null = null
	s.records[i].Value = value
	s.records[i].Flags = flags
	return nil
}

// DeleteItem removes the record at index i.
func (s *Series) DeleteItem(i int) error {
	if i < 0 || i >= len(s.records) {
		return errs.ErrInvalidIndex
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	return nil
}

// DeleteRecord removes the record with ts == key, returning its former
// index, or false if no such record existed.
func (s *Series) DeleteRecord(key Timestamp) (int, bool) {
	i, ok := s.Get(key)
	if !ok {
		return 0, false
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	return i, true
}

// DeleteRange removes every record with index in [r1, r2] inclusive and
// returns the index of the first remaining record at or after the
// deleted range.
func (s *Series) DeleteRange(r1, r2 int) (int, error) {
	if r1 < 0 || r2 < r1 || r2 >= len(s.records) {
		return 0, errs.ErrInvalidIndex
	}
	s.records = append(s.records[:r1], s.records[r2+1:]...)
	return r1, nil
}

// Merge inserts the block other into s, subject to the strict
// no-intermixing, no-overwriting rules: other's records must slot in as a
// single contiguous block at one position in s, and that position must
// not already hold either of other's boundary timestamps.
func (s *Series) Merge(other *Series) error {
	if other.Len() == 0 {
		return nil
	}
	if s.Len() == 0 {
		s.records = append(s.records, other.records...)
		return nil
	}
	first := other.records[0].TS
	last := other.records[len(other.records)-1].TS

	i1 := s.lowerBound(first)
	i2 := s.lowerBound(last)
	if i1 != i2 {
		return errs.ErrIntermixing
	}
	if i1 < len(s.records) && (s.records[i1].TS == first || s.records[i1].TS == last) {
		return errs.ErrOverwriting
	}

	s.records = append(s.records, make([]Record, len(other.records))...)
	copy(s.records[i1+len(other.records):], s.records[i1:len(s.records)-len(other.records)])
	copy(s.records[i1:], other.records)
	return nil
}

// MergeAnyway inserts every record of other into s with allowExisting
// true, used internally by the event identifier to build the union of
// every input series' timestamps without regard to intermixing.
func (s *Series) MergeAnyway(other *Series) error {
	for _, r := range other.records {
		if err := s.Insert(r.TS, r.Null, r.Value, r.Flags, true); err != nil {
			return err
		}
	}
	return nil
}

// aggRange resolves [get_next(start), get_prev(end)] to a half-open index
// range [lo, hi); an empty or inverted range yields lo == hi.
func (s *Series) aggRange(start, end Timestamp) (lo, hi int) {
	lo, ok := s.GetNext(start)
	if !ok {
		return 0, 0
	}
	hiIdx, ok := s.GetPrev(end)
	if !ok || hiIdx < lo {
		return 0, 0
	}
	return lo, hiIdx + 1
}

// Min returns the smallest non-null value in [start, end], or NaN if the
// range contains no non-null record.
func (s *Series) Min(start, end Timestamp) float64 {
	lo, hi := s.aggRange(start, end)
	best := math.NaN()
	for i := lo; i < hi; i++ {
		if s.records[i].Null {
			continue
		}
		if math.IsNaN(best) || s.records[i].Value < best {
			best = s.records[i].Value
		}
	}
	return best
}

// Max returns the largest non-null value in [start, end], or NaN if the
// range contains no non-null record.
func (s *Series) Max(start, end Timestamp) float64 {
	lo, hi := s.aggRange(start, end)
	best := math.NaN()
	for i := lo; i < hi; i++ {
		if s.records[i].Null {
			continue
		}
		if math.IsNaN(best) || s.records[i].Value > best {
			best = s.records[i].Value
		}
	}
	return best
}

// Sum returns the sum of non-null values in [start, end], or NaN if the
// range contains no non-null record.
func (s *Series) Sum(start, end Timestamp) float64 {
	lo, hi := s.aggRange(start, end)
	var total float64
	count := 0
	for i := lo; i < hi; i++ {
		if s.records[i].Null {
			continue
		}
		total += s.records[i].Value
		count++
	}
	if count == 0 {
		return math.NaN()
	}
	return total
}

// Average returns the mean of non-null values in [start, end], or NaN if
// the range contains no non-null record.
func (s *Series) Average(start, end Timestamp) float64 {
	lo, hi := s.aggRange(start, end)
	var total float64
	count := 0
	for i := lo; i < hi; i++ {
		if s.records[i].Null {
			continue
		}
		total += s.records[i].Value
		count++
	}
	if count == 0 {
		return math.NaN()
	}
	return total / float64(count)
}
