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
Package executor runs statements against a MySQL server and converts
result sets into typed cells.

The package wraps database/sql with the go-sql-driver/mysql driver. One
Client maps to one console session; the pool is pinned to a single
connection so that session state on the server side (USE, session
variables) behaves the way an interactive monitor expects.

Result sets are materialized eagerly: every row is pulled and decoded
before Execute returns, because column widths cannot be computed until
the widest cell is known. Statements without column metadata (INSERT,
UPDATE, DDL) report their affected-row count instead.
*/
package executor

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"

	"mymon/internal/errors"
	"mymon/internal/logging"
	"mymon/internal/value"
)

// Config holds the connection parameters for one server.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// Result is the outcome of one executed statement. Columns is empty for
// statements that do not produce rows; Affected is meaningful only then.
type Result struct {
	Columns  []string
	Rows     [][]value.Cell
	Affected uint64
}

// Client is a connected statement executor.
type Client struct {
	db     *sql.DB
	connID uint64
	log    *logging.Logger
}

// Connect opens a connection to the server and verifies it with a ping.
// A failure here is fatal to the session; the returned error wraps the
// driver's cause.
func Connect(cfg Config) (*Client, error) {
	driverCfg := mysql.NewConfig()
	driverCfg.User = cfg.User
	driverCfg.Passwd = cfg.Password
	driverCfg.Net = "tcp"
	driverCfg.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	driverCfg.DBName = cfg.Database
	driverCfg.AllowNativePasswords = true

	db, err := sql.Open("mysql", driverCfg.FormatDSN())
	if err != nil {
		return nil, errors.ConnectionFailed(cfg.Host, cfg.Port, err)
	}

	// One interactive session, one server connection. Session-scoped
	// server state (USE, SET) must not land on a different pooled
	// connection than the next query.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.ConnectionFailed(cfg.Host, cfg.Port, err)
	}

	c := &Client{db: db, log: logging.NewLogger("executor")}

	var connID uint64
	if err := db.QueryRow("SELECT CONNECTION_ID()").Scan(&connID); err != nil {
		c.log.Warn("Connection id lookup failed", "error", err)
	}
	c.connID = connID

	c.log.Debug("Connected", "addr", driverCfg.Addr, "connection_id", connID)
	return c, nil
}

// Close releases the server connection.
func (c *Client) Close() error {
	return c.db.Close()
}

// ConnectionID returns the server-assigned id of this connection.
func (c *Client) ConnectionID() uint64 {
	return c.connID
}

// rowStatements are the leading keywords of statements that produce a
// result set and therefore go through the query path. Everything else is
// executed for its affected-row count.
var rowStatements = map[string]bool{
	"SELECT":   true,
	"SHOW":     true,
	"DESCRIBE": true,
	"DESC":     true,
	"EXPLAIN":  true,
	"ANALYZE":  true,
	"WITH":     true,
	"TABLE":    true,
	"VALUES":   true,
	"CHECKSUM": true,
	"CALL":     true,
}

// leadingKeyword extracts the first SQL keyword of a statement,
// uppercased. Leading whitespace, comments (/* */, --, #) and opening
// parentheses are skipped, so "(SELECT 1) UNION (SELECT 2)" and
// "/* hint */ SELECT 1" classify by SELECT, not by their prefix.
func leadingKeyword(stmt string) string {
	s := stmt
	for {
		s = strings.TrimLeft(s, " \t\r\n(")
		switch {
		case strings.HasPrefix(s, "/*"):
			end := strings.Index(s, "*/")
			if end < 0 {
				return ""
			}
			s = s[end+2:]
		case strings.HasPrefix(s, "--"), strings.HasPrefix(s, "#"):
			nl := strings.IndexByte(s, '\n')
			if nl < 0 {
				return ""
			}
			s = s[nl+1:]
		default:
			fields := strings.Fields(s)
			if len(fields) == 0 {
				return ""
			}
			return strings.ToUpper(fields[0])
		}
	}
}

// returnsRows reports whether a statement is expected to produce column
// metadata, judged by its leading keyword.
func returnsRows(stmt string) bool {
	return rowStatements[leadingKeyword(stmt)]
}

// Execute runs one statement. Statements that produce rows come back
// with column metadata and every row eagerly decoded; all others report
// their affected-row count. Per-cell decode failures are embedded in the
// cells, never returned as statement errors.
func (c *Client) Execute(stmt string) (*Result, error) {
	if returnsRows(stmt) {
		return c.query(stmt)
	}

	res, err := c.db.Exec(stmt)
	if err != nil {
		return nil, errors.ExecutionFailed(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		affected = 0
	}
	c.log.Debug("Statement executed", "affected", affected)
	return &Result{Affected: uint64(affected)}, nil
}

// query runs a row-producing statement and materializes the result set.
func (c *Client) query(stmt string) (*Result, error) {
	start := time.Now()
	rows, err := c.db.Query(stmt)
	if err != nil {
		return nil, errors.ExecutionFailed(err)
	}
	defer rows.Close()

	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, errors.ExecutionFailed(err)
	}

	columns := make([]string, len(types))
	typeNames := make([]string, len(types))
	for i, t := range types {
		columns[i] = t.Name()
		typeNames[i] = t.DatabaseTypeName()
	}

	result := &Result{Columns: columns}
	raw := make([]sql.RawBytes, len(types))
	dest := make([]interface{}, len(types))
	for i := range raw {
		dest[i] = &raw[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, errors.ExecutionFailed(err)
		}
		row := make([]value.Cell, len(types))
		for i := range raw {
			row[i] = decodeCell(typeNames[i], raw[i])
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.ExecutionFailed(err)
	}

	c.log.Debug("Result set materialized",
		"columns", len(columns),
		"rows", len(result.Rows),
		"elapsed_ms", time.Since(start).Milliseconds())
	return result, nil
}

// SelectDatabase switches the connection's active database.
func (c *Client) SelectDatabase(name string) error {
	quoted := "`" + strings.ReplaceAll(name, "`", "``") + "`"
	if _, err := c.db.Exec("USE " + quoted); err != nil {
		return errors.DatabaseSwitchFailed(name, err)
	}
	return nil
}

// ScalarLookup runs a single-value introspection query. A NULL result
// comes back as the empty string.
func (c *Client) ScalarLookup(query string) (string, error) {
	var v sql.NullString
	if err := c.db.QueryRow(query).Scan(&v); err != nil {
		return "", errors.ExecutionFailed(err)
	}
	return v.String, nil
}
