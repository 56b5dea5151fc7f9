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

package session

import "strings"

// StatementBuffer accumulates input lines into complete statements.
//
// It is a two-state machine. In the empty state a new line either
// dispatches immediately (bare console directive, or a line already
// ending with the terminator) or starts accumulation. While
// accumulating, each appended line is checked for a trailing `;` — the
// check is against the newly appended line, not the whole buffer, so a
// `;` buried mid-statement never dispatches early. An interrupt discards
// the buffer without dispatching.
type StatementBuffer struct {
	buf strings.Builder
}

// Terminator marks the end of a server-bound statement.
const Terminator = ";"

// Append adds one input line. When the line completes a statement, the
// full buffered statement is returned with done=true and the buffer
// resets to empty; otherwise the buffer keeps accumulating.
func (b *StatementBuffer) Append(line string) (stmt string, done bool) {
	// Local directives dispatch without a terminator, but only from the
	// empty state: mid-statement they are ordinary continuation text.
	if b.buf.Len() == 0 && IsBareDirective(line) {
		return line, true
	}

	b.buf.WriteString(line)
	b.buf.WriteString(" ")

	if strings.HasSuffix(strings.TrimSpace(line), Terminator) {
		stmt = b.buf.String()
		b.buf.Reset()
		return stmt, true
	}
	return "", false
}

// Interrupt discards any buffered input and returns to the empty state.
func (b *StatementBuffer) Interrupt() {
	b.buf.Reset()
}

// Accumulating reports whether a partial statement is buffered.
func (b *StatementBuffer) Accumulating() bool {
	return b.buf.Len() > 0
}

// Prompt returns the prompt for the buffer's current state. The primary
// prompt shows the current database when one is selected; the
// continuation prompt never does.
func (b *StatementBuffer) Prompt(database string) string {
	if b.Accumulating() {
		return "    -> "
	}
	if database != "" {
		return "mymon(" + database + ") > "
	}
	return "mymon > "
}
