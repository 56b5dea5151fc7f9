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
Package render builds aligned tables from result-set rows.

Width Computation:
==================

Alignment uses a strict two-pass algorithm:

 1. Pass 1 renders every cell without styling and widens each column to
    the maximum of its column-name length and its widest cell.
 2. Pass 2 renders again, this time with styling if enabled, and pads
    each cell to the column's final width.

The passes are separate because ANSI escape sequences occupy bytes but
no terminal columns; measuring a styled string would break alignment the
moment colors are on. Widths therefore always come from unstyled output.

The drawn frame uses Unicode box-drawing characters:

	┌──────┬────┐
	│ name │ id │
	├──────┼────┤
	│ ada  │ 1  │
	└──────┴────┘

Header cells are always bold; they pick up a cyan accent only when
color output is enabled.
*/
package render

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"mymon/internal/cli"
	"mymon/internal/value"
)

// Box-drawing glyphs for the table frame.
const (
	topLeft     = "┌"
	topRight    = "┐"
	bottomLeft  = "└"
	bottomRight = "┘"
	horizontal  = "─"
	vertical    = "│"
	topT        = "┬"
	bottomT     = "┴"
	leftT       = "├"
	rightT      = "┤"
	cross       = "┼"
)

// Table is a fully laid-out result table ready for display.
type Table struct {
	lines    []string
	rowCount int
}

// RowCount returns the number of data rows (the header excluded).
func (t *Table) RowCount() int {
	return t.rowCount
}

// WriteTo writes the drawn table to w.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, line := range t.lines {
		n, err := fmt.Fprintln(w, line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the drawn table as a single string.
func (t *Table) String() string {
	return strings.Join(t.lines, "\n") + "\n"
}

// Build lays out a result table from column names and rows of cells.
// Rows shorter than the column list are padded with NULL cells; extra
// cells are ignored. Cell formatting is delegated to value.Render, so a
// cell-level decode error shows as "ERROR" without failing the table.
func Build(columns []string, rows [][]value.Cell, colorized bool) *Table {
	widths := make([]int, len(columns))
	for i, name := range columns {
		widths[i] = cellWidth(name)
	}

	// Pass 1: widen columns against unstyled cell strings.
	for _, row := range rows {
		for i := range columns {
			s, _ := value.Render(cellAt(row, i), false)
			if w := cellWidth(s); w > widths[i] {
				widths[i] = w
			}
		}
	}

	t := &Table{rowCount: len(rows)}
	t.lines = append(t.lines, border(widths, topLeft, topT, topRight))

	// Header: always bold, cyan accent only under color output.
	headerCells := make([]string, len(columns))
	for i, name := range columns {
		padded := pad(name, widths[i])
		if colorized {
			headerCells[i] = cli.Style(padded, true, cli.Bold, cli.BrightCyan)
		} else {
			headerCells[i] = cli.Style(padded, true, cli.Bold)
		}
	}
	t.lines = append(t.lines, vertical+strings.Join(headerCells, vertical)+vertical)
	t.lines = append(t.lines, border(widths, leftT, cross, rightT))

	// Pass 2: emit styled cells padded to the final widths.
	for _, row := range rows {
		cells := make([]string, len(columns))
		for i := range columns {
			plain, _ := value.Render(cellAt(row, i), false)
			styled, _ := value.Render(cellAt(row, i), colorized)
			// Pad by the unstyled width; escape codes take no columns.
			cells[i] = " " + styled + strings.Repeat(" ", widths[i]-cellWidth(plain)) + " "
		}
		t.lines = append(t.lines, vertical+strings.Join(cells, vertical)+vertical)
	}

	t.lines = append(t.lines, border(widths, bottomLeft, bottomT, bottomRight))
	return t
}

// cellAt returns the i-th cell of a row, a NULL cell when the slot is
// missing.
func cellAt(row []value.Cell, i int) value.Cell {
	if i < len(row) {
		return row[i]
	}
	return value.NullCell()
}

// cellWidth returns the number of terminal columns an unstyled string
// occupies. Content is measured in runes, not bytes, so multibyte text
// does not distort the frame.
func cellWidth(s string) int {
	return utf8.RuneCountInString(s)
}

// pad left-aligns s inside a field of the given width with one space of
// padding on each side.
func pad(s string, width int) string {
	return " " + s + strings.Repeat(" ", width-cellWidth(s)) + " "
}

// border draws a horizontal frame line using the given corner and
// junction glyphs.
func border(widths []int, left, junction, right string) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat(horizontal, w+2)
	}
	return left + strings.Join(parts, junction) + right
}

// Summary formats the trailing result line, e.g. "3 rows in set (0.02 sec)".
func Summary(rowCount int, elapsed time.Duration) string {
	noun := "rows"
	if rowCount == 1 {
		noun = "row"
	}
	return fmt.Sprintf("%d %s in set (%.2f sec)", rowCount, noun, elapsed.Seconds())
}

// KeyValue is one label/value line of a borderless listing.
type KeyValue struct {
	Key   string
	Value string
}

// BuildKeyValue lays out label/value pairs as a borderless two-column
// listing, labels bold, as used by the status directive. There is no
// header row and no summary.
func BuildKeyValue(pairs []KeyValue, colorized bool) *Table {
	width := 0
	for _, p := range pairs {
		if w := cellWidth(p.Key); w > width {
			width = w
		}
	}

	t := &Table{rowCount: len(pairs)}
	for _, p := range pairs {
		label := cli.Style(p.Key, true, cli.Bold) + strings.Repeat(" ", width-cellWidth(p.Key))
		val := p.Value
		if colorized {
			val = cli.Style(val, true, cli.BrightWhite)
		}
		t.lines = append(t.lines, " "+label+"  "+val)
	}
	return t
}
