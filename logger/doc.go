// Package logger provides a small leveled console logger whose lines are
// tagged with a fixed context label.
//
// # Output
//
// Each call writes exactly one line:
//
//	2024-01-15T10:30:00.000Z INFO [Auth] user logged in
//
// The timestamp is UTC with millisecond precision. The [context] segment is
// omitted when the Logger was created with an empty context.
//
// # Levels and Colors
//
// Five levels are supported, each with a fixed line color:
//
//   - LOG   white
//   - DEBUG cyan
//   - INFO  blue
//   - WARN  yellow
//   - ERROR red
//
// Colors follow Config.Color. ColorAuto (the default) only colors terminals
// and honors NO_COLOR and CLICOLOR_FORCE; ColorAlways and ColorNever force
// the policy.
//
// # Usage
//
// Create one Logger per subsystem:
//
//	log := logger.New("Auth")
//	log.Info("user logged in")
//	log.Log("count:", 42, map[string]string{"key": "value"})
//
// Arguments are joined with spaces. Strings are printed as-is, errors as
// their message, and everything else as compact JSON. Logging never panics
// or returns an error; values that cannot be encoded are printed as a
// placeholder.
//
// Write to another destination or force plain output:
//
//	log := logger.NewWithConfig("Worker", logger.Config{Output: os.Stderr, Color: logger.ColorNever})
package logger
