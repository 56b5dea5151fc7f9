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

// DirectiveKind identifies how a complete input should be handled.
type DirectiveKind int

const (
	// DirectiveForward sends the statement to the server unchanged.
	DirectiveForward DirectiveKind = iota
	// DirectiveStatus shows connection and server information locally.
	DirectiveStatus
	// DirectiveClearScreen clears the terminal without a server round trip.
	DirectiveClearScreen
	// DirectiveSelectDatabase switches the active database.
	DirectiveSelectDatabase
)

// Directive is the classification of one complete input.
type Directive struct {
	Kind DirectiveKind
	// Database is the target database name for DirectiveSelectDatabase.
	Database string
	// Statement is the original input for DirectiveForward.
	Statement string
}

// Classify decides whether input is a console directive or a statement
// bound for the server. Matching is case-insensitive on the trimmed
// input; the first matching rule wins:
//
//	"status"         -> DirectiveStatus
//	"clear" or `\c`  -> DirectiveClearScreen
//	"use <name>..."  -> DirectiveSelectDatabase, terminator stripped
//	anything else    -> DirectiveForward with the input unchanged
//
// The database name keeps its original case; only the "use " prefix is
// matched case-insensitively.
func Classify(input string) Directive {
	trimmed := strings.TrimSpace(input)
	lowered := strings.ToLower(trimmed)

	switch lowered {
	case "status":
		return Directive{Kind: DirectiveStatus}
	case "clear", `\c`:
		return Directive{Kind: DirectiveClearScreen}
	}

	if strings.HasPrefix(lowered, "use ") {
		name := trimmed[len("use "):]
		name = strings.TrimSpace(name)
		name = strings.TrimRight(name, ";")
		name = strings.TrimSpace(name)
		return Directive{Kind: DirectiveSelectDatabase, Database: name}
	}

	return Directive{Kind: DirectiveForward, Statement: input}
}

// IsBareDirective reports whether a single line is a console directive
// recognized without a statement terminator. Directives handled locally
// never need the `;` that marks a server-bound statement.
func IsBareDirective(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "status", "clear", `\c`:
		return true
	}
	return false
}
