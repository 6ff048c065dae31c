package model

import "time"

// RunReport is the aggregated outcome of a single check run.
// It holds every per-URL result in input order plus run metadata.
//
// Design decision: Results keep strict input order even when probing is
// concurrent. Deterministic ordering makes summary output stable across
// runs and keeps the dead-link list aligned with the input file.
type RunReport struct {
	// Source is the path of the URL list that was checked.
	Source string `json:"source"`

	// DateChecked is when the run started.
	DateChecked time.Time `json:"date_checked"`

	// Authenticated reports whether a bearer credential was supplied.
	// The credential itself is never stored in the report.
	Authenticated bool `json:"authenticated"`

	// Results holds one entry per non-blank input line, in input order.
	Results []CheckResult `json:"results"`

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration `json:"elapsed_ns"`
}

// NewRunReport creates an empty report for the given source file.
func NewRunReport(source string, authenticated bool) *RunReport {
	return &RunReport{
		Source:        source,
		DateChecked:   time.Now(),
		Authenticated: authenticated,
		Results:       []CheckResult{},
	}
}

// Total returns the number of checked lines.
func (r *RunReport) Total() int {
	return len(r.Results)
}

// Summary aggregates a run's results: per-status counts and the ordered
// list of dead (non-EXISTS) URLs. It is derived, never stored; build it
// with NewSummary once all results are collected.
type Summary struct {
	// Counts maps each status to the number of results with that status.
	// Statuses with zero results are present with a zero count so the
	// mapping stays total.
	Counts map[StatusCode]int `json:"-"`

	// CountsByName mirrors Counts keyed by status name for JSON output.
	CountsByName map[string]int `json:"counts"`

	// DeadLinks lists the original URLs whose status is not EXISTS,
	// in input order, duplicates preserved.
	DeadLinks []string `json:"dead_links,omitempty"`
}

// NewSummary computes the summary for a completed run.
// The per-status counts always partition the results exactly.
func NewSummary(report *RunReport) *Summary {
	s := &Summary{
		Counts:       make(map[StatusCode]int, len(AllStatuses())),
		CountsByName: make(map[string]int, len(AllStatuses())),
	}
	for _, status := range AllStatuses() {
		s.Counts[status] = 0
		s.CountsByName[status.String()] = 0
	}

	for _, result := range report.Results {
		s.Counts[result.Status]++
		s.CountsByName[result.Status.String()]++
		if result.Status.IsProblem() {
			s.DeadLinks = append(s.DeadLinks, result.RawURL)
		}
	}
	return s
}

// TotalChecked returns the sum of all per-status counts.
func (s *Summary) TotalChecked() int {
	total := 0
	for _, count := range s.Counts {
		total += count
	}
	return total
}

// HasDeadLinks reports whether any URL was classified as a problem.
func (s *Summary) HasDeadLinks() bool {
	return len(s.DeadLinks) > 0
}
