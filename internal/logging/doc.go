// Package logging constructs the slog loggers used across Slate.
//
// New builds a logger from explicit options; NewFromConfig applies the
// application config, teeing output to stdout and a log file under the
// configured log directory. Console and JSON formats are supported.
package logging
