/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package config

import "github.com/gravwell/gcfg"

// eventCriteriaIni mirrors the teacher's VariableConfig-by-reflection
// approach (config/loader.go's LoadConfigBytes -> gcfg.ReadStringInto),
// but since EventCriteria's shape is fixed and small, gcfg decodes
// straight into it via struct tags instead of a generic reflective
// mapper.
type eventCriteriaIni struct {
	Criteria struct {
		Reverse        bool
		StartThreshold float64 `gcfg:"start-threshold"`
		EndThreshold   float64 `gcfg:"end-threshold"`
		NSeriesStart   int     `gcfg:"n-series-start"`
		NSeriesEnd     int     `gcfg:"n-series-end"`
		TimeSeparator  int64   `gcfg:"time-separator"`
		RangeStart     string  `gcfg:"range-start"`
		RangeEnd       string  `gcfg:"range-end"`
	}
}

// ParseEventCriteria decodes an ini-style text blob, such as:
//
//	[criteria]
//	reverse = false
//	start-threshold = 4
//	end-threshold = 4
//	n-series-start = 1
//	n-series-end = 1
//	time-separator = 3600
//	range-start = 2010-01-01
//	range-end = 2010-12-31
//
// into an EventCriteria, and validates the result. It operates purely on
// the in-memory string; unlike the teacher's LoadConfigFile, there is no
// file-opening entry point here, since file I/O side channels are outside
// this library's scope.
func ParseEventCriteria(text string) (EventCriteria, error) {
	var ini eventCriteriaIni
	if err := gcfg.ReadStringInto(&ini, text); err != nil {
		return EventCriteria{}, err
	}
	c := EventCriteria{
		Reverse:                   ini.Criteria.Reverse,
		StartThreshold:            ini.Criteria.StartThreshold,
		EndThreshold:              ini.Criteria.EndThreshold,
		NTimeseriesStartThreshold: ini.Criteria.NSeriesStart,
		NTimeseriesEndThreshold:   ini.Criteria.NSeriesEnd,
		TimeSeparatorSeconds:      ini.Criteria.TimeSeparator,
		RangeStart:                ini.Criteria.RangeStart,
		RangeEnd:                  ini.Criteria.RangeEnd,
	}
	if err := c.Verify(); err != nil {
		return EventCriteria{}, err
	}
	return c, nil
}
