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
Package banner prints the interactive session's welcome message.

The ASCII art logo is embedded at compile time with go:embed, so the
binary carries no external file dependency. The welcome text reports the
server version and the server-assigned connection id, and is shown only
in interactive mode — one-shot execution stays quiet.
*/
package banner

import (
	_ "embed" // Required for the //go:embed directive
	"fmt"
	"io"

	"mymon/internal/cli"
)

// logo contains the ASCII art loaded from banner.txt at compile time.
//
//go:embed banner.txt
var logo string

// Welcome writes the session banner to w. version is the server's
// reported version string (may be empty if the lookup failed) and
// connID is the server-assigned connection identifier.
func Welcome(w io.Writer, version string, connID uint64) {
	fmt.Fprintln(w, cli.Info(logo))
	fmt.Fprintln(w, "Welcome to the mymon monitor.  Commands end with ;")
	fmt.Fprintln(w)
	if version != "" {
		fmt.Fprintf(w, "Server version: %s\n", version)
	}
	fmt.Fprintf(w, "Connection id:  %d\n", connID)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Type %s for connection info. Type %s to clear the current input statement.\n",
		cli.Highlight("'status'"), cli.Highlight(`'\c'`))
	fmt.Fprintln(w)
}
