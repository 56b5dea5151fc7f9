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
Package session implements the console's query-dispatch pipeline: input
classification, statement accumulation and the session that ties the
executor and the renderer together.

The Session owns all mutable console state — the current database, the
displayed host and port, and the color preference. State changes happen
in exactly one place: a successful database-selection directive. Every
other directive, including failed ones, leaves the state untouched.

One statement is in flight at a time. The session blocks on the executor
for the full round trip, materializes all rows, and only then renders;
there is no background work and nothing here is shared across
goroutines.
*/
package session

import (
	"fmt"
	"time"

	"mymon/internal/executor"
	"mymon/internal/logging"
	"mymon/internal/metrics"
	"mymon/internal/render"
)

// Introspection lookups issued by the status directive. Each one is
// independent: a failure leaves its row empty instead of aborting the
// directive.
const (
	versionLookup = "SELECT VERSION()"
	charsetLookup = "SELECT @@character_set_client"
)

// Executor is the server-side collaborator the session dispatches to.
// *executor.Client satisfies it; tests substitute a fake.
type Executor interface {
	// Execute runs one statement and returns either an affected-row
	// count or column metadata plus fully materialized rows.
	Execute(stmt string) (*executor.Result, error)
	// SelectDatabase switches the connection's active database.
	SelectDatabase(name string) error
	// ScalarLookup runs a single-value introspection query.
	ScalarLookup(query string) (string, error)
}

// Outcome is what one dispatched input produced. A nil Outcome means the
// statement succeeded with nothing to display.
type Outcome struct {
	// Table holds rendered tabular output, nil when there is none.
	Table *render.Table
	// Summary is the trailing "N rows in set" line, empty when absent.
	Summary string
	// Message is a one-line confirmation such as "Query OK".
	Message string
	// ClearScreen asks the caller to clear the terminal.
	ClearScreen bool
}

// Session owns console state and orchestrates dispatch.
type Session struct {
	exec      Executor
	host      string
	port      int
	database  string
	colorized bool
	stats     *metrics.SessionMetrics
	log       *logging.Logger
}

// New creates a session against the given executor. host and port are
// display-only; database is the initially selected database, if any.
func New(exec Executor, host string, port int, database string, colorized bool) *Session {
	return &Session{
		exec:      exec,
		host:      host,
		port:      port,
		database:  database,
		colorized: colorized,
		stats:     metrics.NewSessionMetrics(),
		log:       logging.NewLogger("session"),
	}
}

// CurrentDatabase returns the active database name, empty when none.
func (s *Session) CurrentDatabase() string {
	return s.database
}

// Colorized reports the session's color preference.
func (s *Session) Colorized() bool {
	return s.colorized
}

// Metrics returns the session's counters.
func (s *Session) Metrics() *metrics.SessionMetrics {
	return s.stats
}

// Execute dispatches one complete statement. Console directives are
// handled locally; everything else goes to the executor. Errors are
// recoverable: the caller reports them and the session continues with
// its state unchanged.
func (s *Session) Execute(input string) (*Outcome, error) {
	directive := Classify(input)

	switch directive.Kind {
	case DirectiveStatus:
		return s.showStatus(), nil

	case DirectiveClearScreen:
		return &Outcome{ClearScreen: true}, nil

	case DirectiveSelectDatabase:
		if err := s.exec.SelectDatabase(directive.Database); err != nil {
			// State stays as it was; the executor's error is surfaced
			// unchanged.
			return nil, err
		}
		s.database = directive.Database
		s.log.Debug("Database changed", "database", directive.Database)
		return &Outcome{
			Message: fmt.Sprintf("Database changed to '%s'", directive.Database),
		}, nil

	default:
		return s.forward(directive.Statement)
	}
}

// forward submits a statement to the server and renders the outcome.
// Elapsed time covers the full round trip including row materialization.
func (s *Session) forward(stmt string) (*Outcome, error) {
	start := time.Now()
	res, err := s.exec.Execute(stmt)
	elapsed := time.Since(start)

	if err != nil {
		s.stats.RecordFailure()
		s.log.Warn("Statement failed", "error", err, "elapsed_ms", elapsed.Milliseconds())
		return nil, err
	}

	if len(res.Columns) == 0 {
		// Non-query statement: report affected rows, stay silent at zero.
		s.stats.RecordQuery(elapsed, 0)
		if res.Affected == 0 {
			return nil, nil
		}
		noun := "rows"
		if res.Affected == 1 {
			noun = "row"
		}
		return &Outcome{
			Message: fmt.Sprintf("Query OK, %d %s affected (%.2f sec)",
				res.Affected, noun, elapsed.Seconds()),
		}, nil
	}

	s.stats.RecordQuery(elapsed, len(res.Rows))
	s.log.Debug("Result set rendered",
		"columns", len(res.Columns),
		"rows", len(res.Rows),
		"elapsed_ms", elapsed.Milliseconds())

	table := render.Build(res.Columns, res.Rows, s.colorized)
	return &Outcome{
		Table:   table,
		Summary: render.Summary(table.RowCount(), elapsed),
	}, nil
}

// showStatus assembles the label/value listing for the status directive.
// The version and character-set lookups are independent; either may fail
// without taking the other down.
func (s *Session) showStatus() *Outcome {
	version, err := s.exec.ScalarLookup(versionLookup)
	if err != nil {
		s.log.Warn("Version lookup failed", "error", err)
		version = ""
	}
	charset, err := s.exec.ScalarLookup(charsetLookup)
	if err != nil {
		s.log.Warn("Character set lookup failed", "error", err)
		charset = ""
	}

	database := s.database
	if database == "" {
		database = "None"
	}

	pairs := []render.KeyValue{
		{Key: "Server version:", Value: version},
		{Key: "Server:", Value: fmt.Sprintf("%s:%d", s.host, s.port)},
		{Key: "Current database:", Value: database},
		{Key: "Character set:", Value: charset},
		{Key: "Uptime:", Value: s.stats.Uptime().Truncate(time.Second).String()},
		{Key: "Queries:", Value: fmt.Sprintf("%d", s.stats.QueriesTotal())},
	}
	return &Outcome{Table: render.BuildKeyValue(pairs, s.colorized)}
}
