// Package checker orchestrates a check run: each input line is parsed
// into a repository reference and probed against the API, with results
// collected in input order. Probing is sequential by default; a bounded
// worker pool backed by errgroup handles higher concurrency while a
// shared rate limiter keeps the request rate fixed.
package checker
