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
	"testing"

	"mymon/internal/value"
)

func TestDecodeCell(t *testing.T) {
	tests := []struct {
		name     string
		typeName string
		raw      []byte
		wantKind value.Kind
		wantErr  bool
	}{
		{
			name:     "nil is null",
			typeName: "VARCHAR",
			raw:      nil,
			wantKind: value.KindNull,
		},
		{
			name:     "signed bigint",
			typeName: "BIGINT",
			raw:      []byte("-9001"),
			wantKind: value.KindInt,
		},
		{
			name:     "unsigned bigint",
			typeName: "UNSIGNED BIGINT",
			raw:      []byte("18446744073709551615"),
			wantKind: value.KindUint,
		},
		{
			name:     "tinyint",
			typeName: "TINYINT",
			raw:      []byte("1"),
			wantKind: value.KindInt,
		},
		{
			name:     "float",
			typeName: "FLOAT",
			raw:      []byte("1.5"),
			wantKind: value.KindFloat,
		},
		{
			name:     "double",
			typeName: "DOUBLE",
			raw:      []byte("2.25"),
			wantKind: value.KindDouble,
		},
		{
			name:     "datetime",
			typeName: "DATETIME",
			raw:      []byte("2024-01-02 03:04:05"),
			wantKind: value.KindDateTime,
		},
		{
			name:     "date only",
			typeName: "DATE",
			raw:      []byte("2024-01-02"),
			wantKind: value.KindDateTime,
		},
		{
			name:     "time",
			typeName: "TIME",
			raw:      []byte("51:04:05"),
			wantKind: value.KindDuration,
		},
		{
			name:     "varchar stays bytes",
			typeName: "VARCHAR",
			raw:      []byte("hello"),
			wantKind: value.KindBytes,
		},
		{
			name:     "decimal stays bytes",
			typeName: "DECIMAL",
			raw:      []byte("12.340"),
			wantKind: value.KindBytes,
		},
		{
			name:     "malformed int becomes error cell",
			typeName: "INT",
			raw:      []byte("abc"),
			wantErr:  true,
		},
		{
			name:     "malformed datetime becomes error cell",
			typeName: "DATETIME",
			raw:      []byte("not a date"),
			wantErr:  true,
		},
		{
			name:     "malformed time becomes error cell",
			typeName: "TIME",
			raw:      []byte("12-34"),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := decodeCell(tt.typeName, tt.raw)
			if tt.wantErr {
				if cell.Err == nil {
					t.Errorf("Expected an error cell, got kind %v", cell.Value.Kind)
				}
				// Error cells still render, as "ERROR".
				s, isNull := value.Render(cell, false)
				if s != "ERROR" || isNull {
					t.Errorf("Expected ERROR rendering, got %q null=%v", s, isNull)
				}
				return
			}
			if cell.Err != nil {
				t.Fatalf("Expected no decode error, got %v", cell.Err)
			}
			if cell.Value.Kind != tt.wantKind {
				t.Errorf("Expected kind %v, got %v", tt.wantKind, cell.Value.Kind)
			}
		})
	}
}

func TestDecodeCellRendering(t *testing.T) {
	tests := []struct {
		typeName string
		raw      string
		want     string
	}{
		{"DATETIME", "2024-01-02 03:04:05", "2024-01-02 03:04:05"},
		{"DATETIME", "2024-01-02 03:04:05.123456", "2024-01-02 03:04:05"},
		{"DATE", "2024-01-02", "2024-01-02 00:00:00"},
		{"TIME", "51:04:05", "2.03:04:05"},
		{"TIME", "-51:04:05", "-2.03:04:05"},
		{"TIME", "00:30:00", "0.00:30:00"},
		{"UNSIGNED INT", "4294967295", "4294967295"},
		{"FLOAT", "1.5", "1.5"},
	}
	for _, tt := range tests {
		cell := decodeCell(tt.typeName, []byte(tt.raw))
		got, _ := value.Render(cell, false)
		if got != tt.want {
			t.Errorf("Expected %s %q to render %q, got %q", tt.typeName, tt.raw, tt.want, got)
		}
	}
}

func TestDecodeCellCopiesRawBytes(t *testing.T) {
	raw := []byte("mutable")
	cell := decodeCell("VARCHAR", raw)
	raw[0] = 'X'
	got, _ := value.Render(cell, false)
	if got != "mutable" {
		t.Errorf("Expected decoded bytes independent of the scan buffer, got %q", got)
	}
}

func TestReturnsRows(t *testing.T) {
	tests := []struct {
		stmt string
		want bool
	}{
		{"select 1;", true},
		{"  SELECT * FROM t;", true},
		{"show tables;", true},
		{"describe users;", true},
		{"explain select 1;", true},
		{"with q as (select 1) select * from q;", true},
		{"(SELECT 1) UNION (SELECT 2);", true},
		{"((select 1));", true},
		{"/* hint */ SELECT 1;", true},
		{"-- note\nselect 1;", true},
		{"# note\nshow tables;", true},
		{"call fetch_report();", true},
		{"insert into t values (1);", false},
		{"/* comment */ insert into t values (1);", false},
		{"update t set a = 1;", false},
		{"delete from t;", false},
		{"create table t (id int);", false},
		{"/* unterminated comment", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := returnsRows(tt.stmt); got != tt.want {
			t.Errorf("Expected returnsRows(%q)=%v, got %v", tt.stmt, tt.want, got)
		}
	}
}

func TestParseSecondsFraction(t *testing.T) {
	tests := []struct {
		input      string
		wantSec    int
		wantMicros int
	}{
		{"05", 5, 0},
		{"05.5", 5, 500000},
		{"05.000001", 5, 1},
		{"59.123456789", 59, 123456},
	}
	for _, tt := range tests {
		sec, micros, err := parseSeconds(tt.input)
		if err != nil {
			t.Errorf("Expected no error for %q, got %v", tt.input, err)
			continue
		}
		if sec != tt.wantSec || micros != tt.wantMicros {
			t.Errorf("Expected (%d, %d) for %q, got (%d, %d)",
				tt.wantSec, tt.wantMicros, tt.input, sec, micros)
		}
	}
}
