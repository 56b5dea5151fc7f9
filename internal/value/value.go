/*
 * Copyright (c) 2026 Firefly Software Solutions Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

/*
Package value defines the typed cell values of a result set and the single
renderer that converts them to display strings.

Value Model:
============

A result-set cell is one of a fixed set of variants mirroring the MySQL
wire protocol's value types:

  - Null
  - Bytes (raw byte sequence; text, decimals, blobs)
  - Int / Uint (signed and unsigned 64-bit integers)
  - Float / Double (single and double precision)
  - DateTime (calendar timestamp, microsecond resolution)
  - Duration (signed elapsed time, stored as days + clock fields)

Exactly one variant is active per Value, selected by Kind. A Cell wraps a
Value together with an optional decode error; the zero Cell is a NULL
cell, so a missing slot in a row needs no special representation.

Rendering:
==========

Render is the one place cell formatting happens. Every variant renders to
a deterministic, locale-independent string; byte content is decoded
leniently (invalid UTF-8 sequences are replaced, never rejected) and a
cell-level decode error renders as the literal "ERROR". Render never
fails: malformed input produces a placeholder string, not an error.
*/
package value

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"mymon/internal/cli"
)

// Kind identifies the active variant of a Value.
type Kind int

const (
	// KindNull is an SQL NULL.
	KindNull Kind = iota
	// KindBytes is a raw byte sequence (text columns, decimals, blobs).
	KindBytes
	// KindInt is a signed 64-bit integer.
	KindInt
	// KindUint is an unsigned 64-bit integer.
	KindUint
	// KindFloat is a single-precision float.
	KindFloat
	// KindDouble is a double-precision float.
	KindDouble
	// KindDateTime is a calendar timestamp.
	KindDateTime
	// KindDuration is a signed elapsed time.
	KindDuration
)

// String returns the name of the kind, for logging.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "NULL"
	case KindBytes:
		return "BYTES"
	case KindInt:
		return "INT"
	case KindUint:
		return "UINT"
	case KindFloat:
		return "FLOAT"
	case KindDouble:
		return "DOUBLE"
	case KindDateTime:
		return "DATETIME"
	case KindDuration:
		return "DURATION"
	default:
		return "UNKNOWN"
	}
}

// DateTime holds the fields of a calendar timestamp. The Micros field is
// carried but intentionally dropped by the renderer.
type DateTime struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
	Micros int
}

// Duration holds a signed elapsed time broken into days and clock fields.
// MySQL TIME values range beyond 24 hours, hence the separate day count.
type Duration struct {
	Negative bool
	Days     int
	Hours    int
	Minutes  int
	Seconds  int
	Micros   int
}

// Value is a tagged union over the supported cell variants. Only the
// field selected by Kind is meaningful.
type Value struct {
	Kind     Kind
	Bytes    []byte
	Int      int64
	Uint     uint64
	Float    float64 // backing store for both KindFloat and KindDouble
	DateTime DateTime
	Duration Duration
}

// Cell is one slot of a result row: a value plus an optional decode
// error. The zero Cell is a NULL cell.
type Cell struct {
	Value Value
	Err   error
}

// NullCell returns a cell holding SQL NULL.
func NullCell() Cell {
	return Cell{}
}

// BytesCell returns a cell holding a raw byte sequence.
func BytesCell(b []byte) Cell {
	return Cell{Value: Value{Kind: KindBytes, Bytes: b}}
}

// IntCell returns a cell holding a signed integer.
func IntCell(n int64) Cell {
	return Cell{Value: Value{Kind: KindInt, Int: n}}
}

// UintCell returns a cell holding an unsigned integer.
func UintCell(n uint64) Cell {
	return Cell{Value: Value{Kind: KindUint, Uint: n}}
}

// FloatCell returns a cell holding a single-precision float.
func FloatCell(f float32) Cell {
	return Cell{Value: Value{Kind: KindFloat, Float: float64(f)}}
}

// DoubleCell returns a cell holding a double-precision float.
func DoubleCell(f float64) Cell {
	return Cell{Value: Value{Kind: KindDouble, Float: f}}
}

// DateTimeCell returns a cell holding a calendar timestamp.
func DateTimeCell(dt DateTime) Cell {
	return Cell{Value: Value{Kind: KindDateTime, DateTime: dt}}
}

// DurationCell returns a cell holding an elapsed time.
func DurationCell(d Duration) Cell {
	return Cell{Value: Value{Kind: KindDuration, Duration: d}}
}

// ErrorCell returns a cell carrying a decode error. It renders as the
// literal "ERROR" rather than failing the surrounding row.
func ErrorCell(err error) Cell {
	return Cell{Err: err}
}

// Render converts a cell into its display string and reports whether the
// cell is NULL. It is total: every variant, including error cells and
// malformed byte content, produces a string.
//
// When colorized is true, NULL renders bright red and every other value
// bright white. Styling never changes the underlying string; callers that
// measure widths render with colorized=false.
func Render(c Cell, colorized bool) (string, bool) {
	if c.Err != nil {
		return cli.Style("ERROR", colorized, cli.BrightWhite), false
	}

	var s string
	switch c.Value.Kind {
	case KindNull:
		return cli.Style("NULL", colorized, cli.BrightRed), true
	case KindBytes:
		s = decodeLossy(c.Value.Bytes)
	case KindInt:
		s = strconv.FormatInt(c.Value.Int, 10)
	case KindUint:
		s = strconv.FormatUint(c.Value.Uint, 10)
	case KindFloat:
		// Plain decimal, never exponent notation: 1e7 displays as 10000000.
		s = strconv.FormatFloat(c.Value.Float, 'f', -1, 32)
	case KindDouble:
		s = strconv.FormatFloat(c.Value.Float, 'f', -1, 64)
	case KindDateTime:
		dt := c.Value.DateTime
		s = fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
			dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second)
	case KindDuration:
		d := c.Value.Duration
		sign := ""
		if d.Negative {
			sign = "-"
		}
		s = fmt.Sprintf("%s%d.%02d:%02d:%02d", sign, d.Days, d.Hours, d.Minutes, d.Seconds)
	default:
		// Unknown kinds are treated like decode errors.
		return cli.Style("ERROR", colorized, cli.BrightWhite), false
	}

	return cli.Style(s, colorized, cli.BrightWhite), false
}

// decodeLossy converts raw bytes to a string, replacing invalid UTF-8
// sequences with U+FFFD instead of failing. Blob columns routinely carry
// non-text content and must still display.
func decodeLossy(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return strings.ToValidUTF8(string(b), string(utf8.RuneError))
}
