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
Package errors provides structured error handling for the mymon console.

Error Categories:
=================

  - ConnectionError: failures establishing or keeping the server link.
    Fatal at startup, before the interactive loop begins.
  - ExecutionError: statements the server rejected (syntax, permission,
    constraint). Recovered locally: one error line, buffer cleared,
    session continues.
  - DecodeError: a single cell value that could not be decoded. Recovered
    per cell — the cell renders as "ERROR", the row and statement
    survive.
  - DirectiveError: a console directive that failed (e.g. a database
    switch the server refused). Reported like an execution error; session
    state stays unchanged.

Every error carries a code and category for programmatic handling plus a
cause chain for errors.Is/As.
*/
package errors

import (
	"fmt"
)

// ErrorCode represents a unique error identifier.
type ErrorCode int

const (
	// Connection errors (1000-1999)
	ErrCodeConnection        ErrorCode = 1000
	ErrCodeConnectionRefused ErrorCode = 1001
	ErrCodeConnectionLost    ErrorCode = 1002
	ErrCodeHandshakeFailed   ErrorCode = 1003

	// Execution errors (2000-2999)
	ErrCodeExecution ErrorCode = 2000

	// Decode errors (3000-3999)
	ErrCodeDecode          ErrorCode = 3000
	ErrCodeInvalidDateTime ErrorCode = 3001
	ErrCodeInvalidDuration ErrorCode = 3002
	ErrCodeInvalidNumber   ErrorCode = 3003

	// Directive errors (4000-4999)
	ErrCodeDirective      ErrorCode = 4000
	ErrCodeDatabaseSwitch ErrorCode = 4001
)

// Category represents the error category.
type Category string

const (
	CategoryConnection Category = "CONNECTION"
	CategoryExecution  Category = "EXECUTION"
	CategoryDecode     Category = "DECODE"
	CategoryDirective  Category = "DIRECTIVE"
)

// ConsoleError represents a structured error in the mymon console.
type ConsoleError struct {
	Code     ErrorCode
	Category Category
	Message  string
	Cause    error
}

// Error implements the error interface.
func (e *ConsoleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ERROR %d (%s): %s: %v", e.Code, e.Category, e.Message, e.Cause)
	}
	return fmt.Sprintf("ERROR %d (%s): %s", e.Code, e.Category, e.Message)
}

// Unwrap returns the underlying cause.
func (e *ConsoleError) Unwrap() error {
	return e.Cause
}

// UserMessage returns the message shown on the console, without the
// internal code prefix.
func (e *ConsoleError) UserMessage() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// IsFatal reports whether the error should abort the session. Only
// connection errors are fatal; everything else is recovered locally.
func (e *ConsoleError) IsFatal() bool {
	return e.Category == CategoryConnection
}

// ConnectionFailed creates an error for a failed server connection.
func ConnectionFailed(host string, port int, cause error) *ConsoleError {
	return &ConsoleError{
		Code:     ErrCodeConnectionRefused,
		Category: CategoryConnection,
		Message:  fmt.Sprintf("cannot connect to server at %s:%d", host, port),
		Cause:    cause,
	}
}

// HandshakeFailed creates an error for a failed authentication handshake.
func HandshakeFailed(cause error) *ConsoleError {
	return &ConsoleError{
		Code:     ErrCodeHandshakeFailed,
		Category: CategoryConnection,
		Message:  "server handshake failed",
		Cause:    cause,
	}
}

// ExecutionFailed creates an error for a statement the server rejected.
func ExecutionFailed(cause error) *ConsoleError {
	return &ConsoleError{
		Code:     ErrCodeExecution,
		Category: CategoryExecution,
		Message:  "statement failed",
		Cause:    cause,
	}
}

// InvalidDateTime creates a decode error for a malformed timestamp.
func InvalidDateTime(raw string) *ConsoleError {
	return &ConsoleError{
		Code:     ErrCodeInvalidDateTime,
		Category: CategoryDecode,
		Message:  fmt.Sprintf("malformed datetime value %q", raw),
	}
}

// InvalidDuration creates a decode error for a malformed time value.
func InvalidDuration(raw string) *ConsoleError {
	return &ConsoleError{
		Code:     ErrCodeInvalidDuration,
		Category: CategoryDecode,
		Message:  fmt.Sprintf("malformed time value %q", raw),
	}
}

// InvalidNumber creates a decode error for a malformed numeric value.
func InvalidNumber(raw string) *ConsoleError {
	return &ConsoleError{
		Code:     ErrCodeInvalidNumber,
		Category: CategoryDecode,
		Message:  fmt.Sprintf("malformed numeric value %q", raw),
	}
}

// DatabaseSwitchFailed creates an error for a refused database switch.
func DatabaseSwitchFailed(name string, cause error) *ConsoleError {
	return &ConsoleError{
		Code:     ErrCodeDatabaseSwitch,
		Category: CategoryDirective,
		Message:  fmt.Sprintf("cannot switch to database '%s'", name),
		Cause:    cause,
	}
}
