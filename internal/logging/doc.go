// Package logging assembles the structured slog loggers used for diagnostic
// tracing.
//
// The client is silent in normal operation; loggers built here only emit when
// debug mode is on. The package also provides a no-op logger for tests and
// wiring code that cannot fail, plus small attr helpers so call sites stay
// uniform.
package logging
