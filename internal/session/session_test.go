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

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"mymon/internal/executor"
	"mymon/internal/value"
)

// fakeExecutor is a scriptable Executor for session tests.
type fakeExecutor struct {
	result     *executor.Result
	execErr    error
	executed   []string
	selected   []string
	selectErr  error
	scalars    map[string]string
	scalarErrs map[string]error
}

func (f *fakeExecutor) Execute(stmt string) (*executor.Result, error) {
	f.executed = append(f.executed, stmt)
	if f.execErr != nil {
		return nil, f.execErr
	}
	return f.result, nil
}

func (f *fakeExecutor) SelectDatabase(name string) error {
	if f.selectErr != nil {
		return f.selectErr
	}
	f.selected = append(f.selected, name)
	return nil
}

func (f *fakeExecutor) ScalarLookup(query string) (string, error) {
	if err, ok := f.scalarErrs[query]; ok {
		return "", err
	}
	return f.scalars[query], nil
}

func newTestSession(exec Executor) *Session {
	return New(exec, "db.example.com", 3306, "", false)
}

func TestExecuteForwardResultSet(t *testing.T) {
	fake := &fakeExecutor{
		result: &executor.Result{
			Columns: []string{"id", "name"},
			Rows: [][]value.Cell{
				{value.IntCell(1), value.BytesCell([]byte("ada"))},
				{value.IntCell(2), value.BytesCell([]byte("grace"))},
			},
		},
	}
	sess := newTestSession(fake)

	out, err := sess.Execute("select id, name from users;")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if out == nil || out.Table == nil {
		t.Fatal("Expected a rendered table")
	}
	if out.Table.RowCount() != 2 {
		t.Errorf("Expected row count 2, got %d", out.Table.RowCount())
	}
	if !strings.HasPrefix(out.Summary, "2 rows in set (") {
		t.Errorf("Expected summary for 2 rows, got %q", out.Summary)
	}
	if len(fake.executed) != 1 || fake.executed[0] != "select id, name from users;" {
		t.Errorf("Expected statement forwarded unchanged, got %v", fake.executed)
	}
}

func TestExecuteNonQueryAffectedRows(t *testing.T) {
	tests := []struct {
		name     string
		affected uint64
		wantOut  bool
		wantMsg  string
	}{
		{
			name:     "zero affected rows stays silent",
			affected: 0,
			wantOut:  false,
		},
		{
			name:     "one affected row singular",
			affected: 1,
			wantOut:  true,
			wantMsg:  "Query OK, 1 row affected (",
		},
		{
			name:     "many affected rows plural",
			affected: 5,
			wantOut:  true,
			wantMsg:  "Query OK, 5 rows affected (",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeExecutor{result: &executor.Result{Affected: tt.affected}}
			sess := newTestSession(fake)

			out, err := sess.Execute("update users set active = 1;")
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if !tt.wantOut {
				if out != nil {
					t.Errorf("Expected no output, got %+v", out)
				}
				return
			}
			if out == nil {
				t.Fatal("Expected an outcome")
			}
			if !strings.HasPrefix(out.Message, tt.wantMsg) {
				t.Errorf("Expected message starting %q, got %q", tt.wantMsg, out.Message)
			}
		})
	}
}

func TestExecuteForwardError(t *testing.T) {
	fake := &fakeExecutor{execErr: errors.New("syntax error near 'selct'")}
	sess := newTestSession(fake)

	out, err := sess.Execute("selct 1;")
	if err == nil {
		t.Fatal("Expected the executor's error surfaced")
	}
	if out != nil {
		t.Errorf("Expected no outcome on error, got %+v", out)
	}
	if sess.Metrics().QueriesFailed() != 1 {
		t.Errorf("Expected 1 failed query recorded, got %d", sess.Metrics().QueriesFailed())
	}
}

func TestExecuteSelectDatabase(t *testing.T) {
	fake := &fakeExecutor{}
	sess := newTestSession(fake)

	out, err := sess.Execute("use sales;")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if sess.CurrentDatabase() != "sales" {
		t.Errorf("Expected current database 'sales', got %q", sess.CurrentDatabase())
	}
	if out == nil || out.Message != "Database changed to 'sales'" {
		t.Errorf("Expected confirmation message, got %+v", out)
	}
	if out.Table != nil {
		t.Error("Expected no table for a database switch")
	}
	if len(fake.executed) != 0 {
		t.Errorf("Expected no statement forwarded, got %v", fake.executed)
	}
}

func TestExecuteSelectDatabaseFailureLeavesStateUnchanged(t *testing.T) {
	refused := errors.New("access denied for database 'secret'")
	fake := &fakeExecutor{selectErr: refused}
	sess := New(fake, "db.example.com", 3306, "prod", false)

	_, err := sess.Execute("use secret;")
	if err == nil {
		t.Fatal("Expected the executor's error surfaced")
	}
	if !errors.Is(err, refused) {
		t.Errorf("Expected error surfaced unchanged, got %v", err)
	}
	if sess.CurrentDatabase() != "prod" {
		t.Errorf("Expected state unchanged, got %q", sess.CurrentDatabase())
	}
}

func TestExecuteClearScreen(t *testing.T) {
	fake := &fakeExecutor{}
	sess := newTestSession(fake)

	for _, input := range []string{"clear", `\c`} {
		out, err := sess.Execute(input)
		if err != nil {
			t.Fatalf("Expected no error for %q, got %v", input, err)
		}
		if out == nil || !out.ClearScreen {
			t.Errorf("Expected clear-screen outcome for %q, got %+v", input, out)
		}
		if len(fake.executed) != 0 {
			t.Errorf("Expected no server round trip for %q", input)
		}
	}
}

func TestExecuteStatus(t *testing.T) {
	fake := &fakeExecutor{
		scalars: map[string]string{
			versionLookup: "8.0.36",
			charsetLookup: "utf8mb4",
		},
	}
	sess := New(fake, "db.example.com", 3306, "sales", false)

	out, err := sess.Execute("status")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if out == nil || out.Table == nil {
		t.Fatal("Expected a status table")
	}
	text := out.Table.String()
	for _, want := range []string{"8.0.36", "db.example.com:3306", "sales", "utf8mb4"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected status output to contain %q, got:\n%s", want, text)
		}
	}
	if out.Summary != "" {
		t.Errorf("Expected no summary for status, got %q", out.Summary)
	}
}

func TestExecuteStatusLookupFailuresAreIndependent(t *testing.T) {
	fake := &fakeExecutor{
		scalars:    map[string]string{charsetLookup: "latin1"},
		scalarErrs: map[string]error{versionLookup: errors.New("permission denied")},
	}
	sess := newTestSession(fake)

	out, err := sess.Execute("status")
	if err != nil {
		t.Fatalf("Expected status to survive a failed lookup, got %v", err)
	}
	if out == nil || out.Table == nil {
		t.Fatal("Expected a status table")
	}
	if !strings.Contains(out.Table.String(), "latin1") {
		t.Errorf("Expected the surviving lookup rendered, got:\n%s", out.Table.String())
	}
}

func TestExecuteRecordsMetrics(t *testing.T) {
	fake := &fakeExecutor{
		result: &executor.Result{
			Columns: []string{"n"},
			Rows:    [][]value.Cell{{value.IntCell(1)}, {value.IntCell(2)}, {value.IntCell(3)}},
		},
	}
	sess := newTestSession(fake)

	for i := 0; i < 2; i++ {
		if _, err := sess.Execute(fmt.Sprintf("select %d;", i)); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}
	if got := sess.Metrics().QueriesTotal(); got != 2 {
		t.Errorf("Expected 2 queries recorded, got %d", got)
	}
	if got := sess.Metrics().RowsFetched(); got != 6 {
		t.Errorf("Expected 6 rows recorded, got %d", got)
	}
}
