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
Package cli provides ANSI terminal styling for the mymon console.

The package exposes two layers:

 1. Convenience helpers (Info, Success, Warning, Dimmed, Highlight, ...)
    gated by a package-level switch. These serve the outer shell: prompts,
    the banner, help text and one-off messages, where a single global
    color preference is the natural model.

 2. Style, which takes an explicit enable flag. The result-rendering path
    uses this form exclusively so that color output is a deterministic
    function of the session's color setting, independently testable for
    both the colored and the plain case.

Styling is purely cosmetic: every helper returns the input string
unchanged when colors are off, and column-width math elsewhere always
operates on the unstyled string.
*/
package cli

import (
	"fmt"
	"os"
)

// ANSI escape codes used throughout the console.
const (
	Reset = "\033[0m"

	Bold = "\033[1m"
	Dim  = "\033[2m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"

	BrightRed   = "\033[91m"
	BrightGreen = "\033[92m"
	BrightBlue  = "\033[94m"
	BrightCyan  = "\033[96m"
	BrightWhite = "\033[97m"
)

// clearScreen moves the cursor home after erasing the display, matching
// what `clear` does on a VT100-compatible terminal.
const clearScreen = "\x1B[2J\x1B[1;1H"

// colorsEnabled is the global switch for the convenience helpers.
// The render path does not consult it; see Style.
var colorsEnabled = true

// SetColorsEnabled turns the convenience helpers on or off globally.
func SetColorsEnabled(enabled bool) {
	colorsEnabled = enabled
}

// ColorsEnabled reports whether the convenience helpers apply styling.
func ColorsEnabled() bool {
	return colorsEnabled
}

// Style wraps s in the given ANSI codes when on is true. Multiple codes
// may be combined, e.g. Style(s, true, Bold, BrightCyan).
func Style(s string, on bool, codes ...string) string {
	if !on || len(codes) == 0 {
		return s
	}
	prefix := ""
	for _, code := range codes {
		prefix += code
	}
	return prefix + s + Reset
}

// Info styles s as informational text (cyan).
func Info(s string) string {
	return Style(s, colorsEnabled, Cyan)
}

// Success styles s as a success message (green).
func Success(s string) string {
	return Style(s, colorsEnabled, Green)
}

// Warning styles s as a warning (yellow).
func Warning(s string) string {
	return Style(s, colorsEnabled, Yellow)
}

// Dimmed styles s as de-emphasized text.
func Dimmed(s string) string {
	return Style(s, colorsEnabled, Dim)
}

// Highlight styles s as emphasized text (bold).
func Highlight(s string) string {
	return Style(s, colorsEnabled, Bold)
}

// PrintInfo prints an informational message to stdout.
func PrintInfo(format string, args ...interface{}) {
	fmt.Println(Info(fmt.Sprintf(format, args...)))
}

// PrintWarning prints a warning message to stdout.
func PrintWarning(format string, args ...interface{}) {
	fmt.Println(Warning(fmt.Sprintf(format, args...)))
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, Style(fmt.Sprintf("Error: "+format, args...), colorsEnabled, BrightRed))
}

// ClearScreen erases the terminal display and homes the cursor.
func ClearScreen() {
	fmt.Print(clearScreen)
}
