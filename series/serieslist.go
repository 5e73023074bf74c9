/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package series

import "github.com/openmeteo/dickinson/errs"

// SeriesList is an ordered collection of externally owned Series
// references: append and delete only. Removing an entry never touches
// the referenced Series itself, mirroring how entry.EntryBlock never
// takes ownership of the *Entry pointers it holds.
type SeriesList struct {
	items []*Series
}

// NewSeriesList returns an empty SeriesList.
func NewSeriesList() *SeriesList {
	return &SeriesList{}
}

// Len returns the number of series referenced.
func (l *SeriesList) Len() int {
	return len(l.items)
}

// At returns the series reference at index i.
func (l *SeriesList) At(i int) (*Series, error) {
	if i < 0 || i >= len(l.items) {
		return nil, errs.ErrInvalidIndex
	}
	return l.items[i], nil
}

// Append adds a reference to s at the end of the list.
func (l *SeriesList) Append(s *Series) {
	l.items = append(l.items, s)
}

// Delete removes the reference at index i; the referenced Series is
// unaffected.
func (l *SeriesList) Delete(i int) error {
	if i < 0 || i >= len(l.items) {
		return errs.ErrInvalidIndex
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return nil
}

// All returns the underlying slice of series references. Callers must not
// retain it across a subsequent mutation of the list.
func (l *SeriesList) All() []*Series {
	return l.items
}
