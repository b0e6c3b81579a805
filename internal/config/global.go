// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride lets tests override the config directory, since
// os.UserHomeDir does not reliably respect the HOME environment variable on
// every platform.
var configDirOverride string

// SetConfigDirOverride sets a custom config directory path. Intended for
// tests and the --config flag plumbing.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// Reset clears test overrides. Call from test cleanup.
func Reset() {
	configDirOverride = ""
}
