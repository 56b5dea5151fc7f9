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
Package main is the entry point for the mymon interactive MySQL console.

mymon Overview:
===============

mymon is an interactive monitor that connects to a MySQL server, reads
statements line by line, and renders result sets as aligned tables.

The console follows a simple synchronous request-response model:

 1. Read one line of input
 2. Accumulate lines until a statement terminator (;) is seen
 3. Classify the statement: console directive or server statement
 4. Dispatch and render the outcome
 5. Repeat

Console directives (handled locally, no terminator required):

	status    Show server and connection information
	clear, \c Clear the screen

Everything else is forwarded to the server unchanged; a leading
USE <db> switches the active database.

Usage Examples:
===============

	Connect to a local server:
	  mymon -u root -p secret

	Connect to a remote server and select a database:
	  mymon --host db1.example.com -P 3307 -u app -D sales

	Execute one statement and exit:
	  mymon -u root -e "SELECT VERSION();"
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"mymon/internal/banner"
	"mymon/internal/cli"
	"mymon/internal/config"
	"mymon/internal/executor"
	"mymon/internal/logging"
	"mymon/internal/session"
)

// isTerminal returns true if stdout is a terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// parseFlags assembles the configuration: defaults, then MYMON_*
// environment variables, then command-line flags.
func parseFlags() *config.Config {
	cfg := config.DefaultConfig()
	cfg.ApplyEnv()

	flag.StringVar(&cfg.Host, "host", cfg.Host, "Server hostname or IP address")
	flag.StringVar(&cfg.Host, "H", cfg.Host, "Server hostname or IP address (shorthand)")
	flag.IntVar(&cfg.Port, "port", cfg.Port, "Server port number")
	flag.IntVar(&cfg.Port, "P", cfg.Port, "Server port number (shorthand)")
	flag.StringVar(&cfg.User, "user", cfg.User, "Username for login")
	flag.StringVar(&cfg.User, "u", cfg.User, "Username for login (shorthand)")
	flag.StringVar(&cfg.Password, "password", cfg.Password, "Password for login")
	flag.StringVar(&cfg.Password, "p", cfg.Password, "Password for login (shorthand)")
	flag.StringVar(&cfg.Database, "database", cfg.Database, "Database to use")
	flag.StringVar(&cfg.Database, "D", cfg.Database, "Database to use (shorthand)")
	flag.StringVar(&cfg.Execute, "execute", cfg.Execute, "Execute a statement and exit")
	flag.StringVar(&cfg.Execute, "e", cfg.Execute, "Execute a statement and exit (shorthand)")
	flag.BoolVar(&cfg.NoColors, "no-colors", cfg.NoColors, "Disable colors in output")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable debug logging")

	flag.Parse()
	return cfg
}

// historyFilePath returns the path to the history file.
func historyFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mymon_history"
	}
	return filepath.Join(home, ".mymon_history")
}

func main() {
	cfg := parseFlags()
	if err := cfg.Validate(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}

	colorized := !cfg.NoColors && isTerminal()
	cli.SetColorsEnabled(colorized)

	if cfg.Debug {
		logging.SetGlobalLevel(logging.DEBUG)
	}
	log := logging.NewLogger("main")
	log.Debug("Starting", "config", cfg.String())

	// A connection failure is fatal: nothing to do without a server.
	client, err := executor.Connect(executor.Config{
		Host:     cfg.Host,
		Port:     cfg.Port,
		User:     cfg.User,
		Password: cfg.Password,
		Database: cfg.Database,
	})
	if err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
	defer client.Close()

	sess := session.New(client, cfg.Host, cfg.Port, cfg.Database, colorized)

	if cfg.Execute != "" {
		// os.Exit skips deferred calls; release the connection first.
		code := runOnce(sess, cfg.Execute)
		client.Close()
		os.Exit(code)
	}

	runInteractive(sess, client)
}

// runOnce executes a single statement and returns the process exit
// status: zero on success, non-zero when the server rejected it.
func runOnce(sess *session.Session, stmt string) int {
	out, err := sess.Execute(stmt)
	if err != nil {
		cli.PrintError("%v", err)
		return 1
	}
	printOutcome(out)
	return 0
}

// runInteractive drives the read-accumulate-dispatch loop until EOF.
func runInteractive(sess *session.Session, client *executor.Client) {
	version, err := client.ScalarLookup("SELECT VERSION()")
	if err != nil {
		version = ""
	}
	banner.Welcome(os.Stdout, version, client.ConnectionID())

	histPath := historyFilePath()
	if _, err := os.Stat(histPath); err != nil {
		fmt.Println("No previous history.")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            promptFor(sess, nil),
		HistoryFile:       histPath,
		InterruptPrompt:   "^C",
		EOFPrompt:         "Bye",
		HistorySearchFold: true,
	})
	if err != nil {
		cli.PrintError("line editing unavailable: %v", err)
		os.Exit(1)
	}
	defer rl.Close()

	var buf session.StatementBuffer
	for {
		rl.SetPrompt(promptFor(sess, &buf))

		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			// Discard buffered input; nothing reaches the server.
			buf.Interrupt()
			continue
		}
		if err == io.EOF {
			// A partially accumulated statement is dropped silently.
			fmt.Println("Bye")
			return
		}
		if err != nil {
			cli.PrintError("%v", err)
			return
		}

		stmt, done := buf.Append(line)
		if !done {
			continue
		}

		out, err := sess.Execute(stmt)
		if err != nil {
			cli.PrintError("%v", err)
			continue
		}
		printOutcome(out)
	}
}

// promptFor renders the prompt for the buffer's current state. A nil
// buffer means session start (empty state).
func promptFor(sess *session.Session, buf *session.StatementBuffer) string {
	var p string
	if buf == nil {
		p = (&session.StatementBuffer{}).Prompt(sess.CurrentDatabase())
	} else {
		p = buf.Prompt(sess.CurrentDatabase())
	}
	return cli.Style(p, sess.Colorized(), cli.BrightGreen)
}

// printOutcome displays one dispatch outcome. A nil outcome means the
// statement succeeded with nothing to show.
func printOutcome(out *session.Outcome) {
	if out == nil {
		return
	}
	if out.ClearScreen {
		cli.ClearScreen()
		return
	}
	if out.Table != nil {
		out.Table.WriteTo(os.Stdout)
	}
	if out.Summary != "" {
		fmt.Println()
		fmt.Println(cli.Success(out.Summary))
	}
	if out.Message != "" {
		fmt.Println(cli.Success(out.Message))
	}
}
