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
Package metrics tracks per-session counters for the mymon console.

The counters feed the status directive's Uptime/Queries rows, the way
the stock mysql client reports session statistics. Counters use atomics
so a future background reporter could read them without coordination,
though the console itself is single-threaded.
*/
package metrics

import (
	"sync/atomic"
	"time"
)

// SessionMetrics holds the counters for one console session.
type SessionMetrics struct {
	// Query counters
	queriesTotal  atomic.Uint64 // statements that reached the server
	queriesFailed atomic.Uint64 // statements the server rejected
	rowsFetched   atomic.Uint64 // data rows materialized across all result sets

	// Cumulative round-trip latency in microseconds
	latencyMicros atomic.Uint64

	started time.Time
}

// NewSessionMetrics returns zeroed counters with the uptime clock
// started.
func NewSessionMetrics() *SessionMetrics {
	return &SessionMetrics{started: time.Now()}
}

// RecordQuery records one successful round trip.
func (m *SessionMetrics) RecordQuery(elapsed time.Duration, rows int) {
	m.queriesTotal.Add(1)
	m.rowsFetched.Add(uint64(rows))
	m.latencyMicros.Add(uint64(elapsed.Microseconds()))
}

// RecordFailure records one rejected statement.
func (m *SessionMetrics) RecordFailure() {
	m.queriesTotal.Add(1)
	m.queriesFailed.Add(1)
}

// QueriesTotal returns the number of statements sent to the server.
func (m *SessionMetrics) QueriesTotal() uint64 {
	return m.queriesTotal.Load()
}

// QueriesFailed returns the number of statements the server rejected.
func (m *SessionMetrics) QueriesFailed() uint64 {
	return m.queriesFailed.Load()
}

// RowsFetched returns the total data rows materialized.
func (m *SessionMetrics) RowsFetched() uint64 {
	return m.rowsFetched.Load()
}

// TotalLatency returns the cumulative server round-trip time.
func (m *SessionMetrics) TotalLatency() time.Duration {
	return time.Duration(m.latencyMicros.Load()) * time.Microsecond
}

// Uptime returns how long the session has been running.
func (m *SessionMetrics) Uptime() time.Duration {
	return time.Since(m.started)
}
