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

package cli

import (
	"strings"
	"testing"
)

func TestStyleExplicitFlag(t *testing.T) {
	if got := Style("x", false, BrightRed); got != "x" {
		t.Errorf("Expected unstyled passthrough, got %q", got)
	}

	got := Style("x", true, BrightRed)
	if !strings.HasPrefix(got, BrightRed) || !strings.HasSuffix(got, Reset) {
		t.Errorf("Expected wrapped in codes, got %q", got)
	}
	if !strings.Contains(got, "x") {
		t.Errorf("Expected content preserved, got %q", got)
	}
}

func TestStyleCombinesCodes(t *testing.T) {
	got := Style("h", true, Bold, BrightCyan)
	if !strings.Contains(got, Bold) || !strings.Contains(got, BrightCyan) {
		t.Errorf("Expected both codes present, got %q", got)
	}
}

func TestGlobalSwitch(t *testing.T) {
	defer SetColorsEnabled(true)

	SetColorsEnabled(false)
	if ColorsEnabled() {
		t.Error("Expected ColorsEnabled to report the switch state")
	}
	if Info("msg") != "msg" {
		t.Error("Expected helpers to pass through when colors are off")
	}
	if Success("msg") != "msg" || Dimmed("msg") != "msg" || Highlight("msg") != "msg" {
		t.Error("Expected all helpers disabled")
	}

	SetColorsEnabled(true)
	if Info("msg") == "msg" {
		t.Error("Expected styling applied when colors are on")
	}
}
