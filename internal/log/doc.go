// Package log provides slog helpers that keep credentials out of log
// output. Check runs may carry a bearer token on every request; the
// redacting handler guarantees the token never reaches the terminal or
// a log file, even at debug level.
package log
