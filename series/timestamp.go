/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package series implements the sorted-by-timestamp containers this
// library is built around: TimestampList (a bare sequence of lookup keys)
// and Series (the same ordering discipline plus a null/value/flags
// payload). Both share the positional, binary-search API adapted from
// entry/block.go's append-only, size-tracked EntryBlock: here the
// container is fully sorted rather than append-only, so every mutator
// keeps (I1) strictly increasing timestamps.
package series

import "math"

// Timestamp is an opaque ordering key: a signed count of seconds since
// 1970-01-01 00:00:00 UTC. Sub-second resolution is intentionally not
// represented, unlike entry.Timestamp's Sec/Nsec pair, since this domain
// measures at minute granularity.
type Timestamp int64

// TimestampMin and TimestampMax are the representable extremes of
// Timestamp, exported the way original_source/dates.h exports
// LONG_TIME_T_MIN/LONG_TIME_T_MAX.
const (
	TimestampMin Timestamp = math.MinInt64
	TimestampMax Timestamp = math.MaxInt64
)
