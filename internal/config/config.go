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
Package config holds the connection and display configuration for the
mymon console.

Configuration is assembled in three layers, later layers winning:

 1. DefaultConfig() — compiled-in defaults.
 2. ApplyEnv() — MYMON_* environment variables.
 3. Command-line flags, bound in cmd/mymon.

Validate() runs once after assembly; a configuration that fails
validation aborts startup before any connection attempt.
*/
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variable names recognized by ApplyEnv.
const (
	EnvHost     = "MYMON_HOST"
	EnvPort     = "MYMON_PORT"
	EnvUser     = "MYMON_USER"
	EnvPassword = "MYMON_PASSWORD"
	EnvDatabase = "MYMON_DATABASE"
)

// DefaultPort is the standard MySQL server port.
const DefaultPort = 3306

// Config holds all settings for one console invocation.
type Config struct {
	Host     string // Server hostname or IP address
	Port     int    // Server port number
	User     string // Username for login (empty = none sent)
	Password string // Password for login
	Database string // Initially selected database (empty = none)

	Execute  string // Statement to run one-shot; empty enters interactive mode
	NoColors bool   // Disable ANSI styling in output
	Debug    bool   // Enable debug logging
}

// DefaultConfig returns a Config with compiled-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Host: "localhost",
		Port: DefaultPort,
	}
}

// ApplyEnv overlays MYMON_* environment variables onto the config.
// Unset variables leave the existing values alone; a malformed port is
// ignored rather than aborting startup.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvHost); v != "" {
		c.Host = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv(EnvUser); v != "" {
		c.User = v
	}
	if v := os.Getenv(EnvPassword); v != "" {
		c.Password = v
	}
	if v := os.Getenv(EnvDatabase); v != "" {
		c.Database = v
	}
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host must not be empty")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", c.Port)
	}
	return nil
}

// Addr returns the host:port address of the configured server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// String returns a loggable summary without the password.
func (c *Config) String() string {
	database := c.Database
	if database == "" {
		database = "(none)"
	}
	return fmt.Sprintf("host=%s port=%d user=%s database=%s colors=%v",
		c.Host, c.Port, c.User, database, !c.NoColors)
}
