// Package model defines the core data structures for repocheck.
// It contains the repository reference, the per-URL check result,
// the closed status classification, and the aggregated run report.
package model
