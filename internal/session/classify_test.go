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

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Directive
	}{
		{
			name:  "status lowercase",
			input: "status",
			want:  Directive{Kind: DirectiveStatus},
		},
		{
			name:  "status uppercase",
			input: "STATUS",
			want:  Directive{Kind: DirectiveStatus},
		},
		{
			name:  "status with surrounding whitespace",
			input: "  status  ",
			want:  Directive{Kind: DirectiveStatus},
		},
		{
			name:  "clear",
			input: "clear",
			want:  Directive{Kind: DirectiveClearScreen},
		},
		{
			name:  "backslash c",
			input: `\c`,
			want:  Directive{Kind: DirectiveClearScreen},
		},
		{
			name:  "use with extra spaces and terminator",
			input: "USE  sales;",
			want:  Directive{Kind: DirectiveSelectDatabase, Database: "sales"},
		},
		{
			name:  "use keeps name case",
			input: "use Sales_DB",
			want:  Directive{Kind: DirectiveSelectDatabase, Database: "Sales_DB"},
		},
		{
			name:  "use with trailing whitespace after terminator",
			input: "use sales ; ",
			want:  Directive{Kind: DirectiveSelectDatabase, Database: "sales"},
		},
		{
			name:  "select forwards unchanged",
			input: "select 1;",
			want:  Directive{Kind: DirectiveForward, Statement: "select 1;"},
		},
		{
			name:  "statement mentioning status forwards",
			input: "select status from jobs;",
			want:  Directive{Kind: DirectiveForward, Statement: "select status from jobs;"},
		},
		{
			name:  "user table query is not a use directive",
			input: "user;",
			want:  Directive{Kind: DirectiveForward, Statement: "user;"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.input)
			if got.Kind != tt.want.Kind {
				t.Errorf("Expected kind %d, got %d", tt.want.Kind, got.Kind)
			}
			if got.Database != tt.want.Database {
				t.Errorf("Expected database %q, got %q", tt.want.Database, got.Database)
			}
			if got.Statement != tt.want.Statement {
				t.Errorf("Expected statement %q, got %q", tt.want.Statement, got.Statement)
			}
		})
	}
}

func TestIsBareDirective(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"status", true},
		{"STATUS", true},
		{"clear", true},
		{`\c`, true},
		{"  clear  ", true},
		{"use sales", false},
		{"select 1", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsBareDirective(tt.input); got != tt.want {
			t.Errorf("Expected IsBareDirective(%q)=%v, got %v", tt.input, tt.want, got)
		}
	}
}
