// Package logging builds the zap loggers used by the CLI and the registry.
//
// Logs go to stderr so command output on stdout stays machine-readable.
// Tests use NewTestLogger to observe entries without writing anywhere.
package logging
