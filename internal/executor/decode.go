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

package executor

import (
	"strconv"
	"strings"

	"mymon/internal/errors"
	"mymon/internal/value"
)

// decodeCell converts one raw wire value into a typed cell, guided by
// the column's reported type. The text protocol delivers every value as
// bytes; numeric, temporal and duration columns are parsed here so the
// renderer can format them canonically. A malformed value yields an
// error cell, never a failed row: the server occasionally emits
// out-of-band content (zero dates, truncated decimals) that must not
// kill the result set.
func decodeCell(typeName string, raw []byte) value.Cell {
	if raw == nil {
		return value.NullCell()
	}

	unsigned := strings.HasPrefix(typeName, "UNSIGNED ")
	base := strings.TrimPrefix(typeName, "UNSIGNED ")

	switch base {
	case "TINYINT", "SMALLINT", "MEDIUMINT", "INT", "BIGINT", "YEAR":
		s := string(raw)
		if unsigned {
			n, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				return value.ErrorCell(errors.InvalidNumber(s))
			}
			return value.UintCell(n)
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return value.ErrorCell(errors.InvalidNumber(s))
		}
		return value.IntCell(n)

	case "FLOAT":
		s := string(raw)
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return value.ErrorCell(errors.InvalidNumber(s))
		}
		return value.FloatCell(float32(f))

	case "DOUBLE":
		s := string(raw)
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return value.ErrorCell(errors.InvalidNumber(s))
		}
		return value.DoubleCell(f)

	case "DATE", "DATETIME", "TIMESTAMP":
		dt, err := parseDateTime(string(raw))
		if err != nil {
			return value.ErrorCell(err)
		}
		return value.DateTimeCell(dt)

	case "TIME":
		d, err := parseDuration(string(raw))
		if err != nil {
			return value.ErrorCell(err)
		}
		return value.DurationCell(d)

	default:
		// Text, decimals, blobs, JSON, enums: carried as raw bytes and
		// decoded leniently at render time.
		return value.BytesCell(append([]byte(nil), raw...))
	}
}

// parseDateTime parses the text-protocol forms "2006-01-02" and
// "2006-01-02 15:04:05[.micros]". Zero dates ("0000-00-00") parse like
// any other; they are a display concern, not a decode failure.
func parseDateTime(s string) (value.DateTime, error) {
	datePart := s
	timePart := ""
	if i := strings.IndexByte(s, ' '); i >= 0 {
		datePart, timePart = s[:i], s[i+1:]
	}

	d := strings.Split(datePart, "-")
	if len(d) != 3 {
		return value.DateTime{}, errors.InvalidDateTime(s)
	}
	year, err1 := strconv.Atoi(d[0])
	month, err2 := strconv.Atoi(d[1])
	day, err3 := strconv.Atoi(d[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return value.DateTime{}, errors.InvalidDateTime(s)
	}

	dt := value.DateTime{Year: year, Month: month, Day: day}
	if timePart == "" {
		return dt, nil
	}

	clock := strings.Split(timePart, ":")
	if len(clock) != 3 {
		return value.DateTime{}, errors.InvalidDateTime(s)
	}
	hour, err1 := strconv.Atoi(clock[0])
	minute, err2 := strconv.Atoi(clock[1])
	second, micros, err3 := parseSeconds(clock[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return value.DateTime{}, errors.InvalidDateTime(s)
	}

	dt.Hour, dt.Minute, dt.Second, dt.Micros = hour, minute, second, micros
	return dt, nil
}

// parseDuration parses the text-protocol TIME form "[-]HHH:MM:SS[.micros]".
// Hours range up to 838 on the wire; they are split into days plus a
// 24-hour clock for display.
func parseDuration(s string) (value.Duration, error) {
	rest := s
	negative := strings.HasPrefix(rest, "-")
	if negative {
		rest = rest[1:]
	}

	clock := strings.Split(rest, ":")
	if len(clock) != 3 {
		return value.Duration{}, errors.InvalidDuration(s)
	}
	hours, err1 := strconv.Atoi(clock[0])
	minutes, err2 := strconv.Atoi(clock[1])
	seconds, micros, err3 := parseSeconds(clock[2])
	if err1 != nil || err2 != nil || err3 != nil || hours < 0 {
		return value.Duration{}, errors.InvalidDuration(s)
	}

	return value.Duration{
		Negative: negative,
		Days:     hours / 24,
		Hours:    hours % 24,
		Minutes:  minutes,
		Seconds:  seconds,
		Micros:   micros,
	}, nil
}

// parseSeconds splits a seconds field with an optional fractional part,
// returning whole seconds and microseconds.
func parseSeconds(s string) (int, int, error) {
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s, frac = s[:i], s[i+1:]
	}
	seconds, err := strconv.Atoi(s)
	if err != nil {
		return 0, 0, err
	}
	if frac == "" {
		return seconds, 0, nil
	}
	// Scale the fraction to microseconds: "5" is 500000, "000001" is 1.
	if len(frac) > 6 {
		frac = frac[:6]
	}
	micros, err := strconv.Atoi(frac)
	if err != nil {
		return 0, 0, err
	}
	for i := len(frac); i < 6; i++ {
		micros *= 10
	}
	return seconds, micros, nil
}
