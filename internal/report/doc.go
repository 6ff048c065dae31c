// Package report renders check run output: streamed per-URL progress
// and the final summary in human-readable, JSON, or Markdown form.
package report
