package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/nao1215/repocheck/internal/model"
)

// JSONWriter outputs the run report as JSON for machine consumption.
type JSONWriter struct {
	baseWriter
	prettyPrint bool
}

// JSONOption configures a JSONWriter.
type JSONOption func(*JSONWriter)

// WithPrettyPrint enables indented JSON output.
func WithPrettyPrint() JSONOption {
	return func(w *JSONWriter) {
		w.prettyPrint = true
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// jsonReport is the serialized shape of a run report. Results carry the
// status as text so consumers never see internal enum numbers.
type jsonReport struct {
	Source        string              `json:"source"`
	DateChecked   time.Time           `json:"date_checked"`
	Authenticated bool                `json:"authenticated"`
	ElapsedMS     int64               `json:"elapsed_ms"`
	Summary       jsonSummary         `json:"summary"`
	Results       []model.CheckResult `json:"results"`
}

// jsonSummary holds per-status counts and the ordered dead-link list.
type jsonSummary struct {
	Total     int            `json:"total"`
	Counts    map[string]int `json:"counts"`
	DeadLinks []string       `json:"dead_links"`
}

// Write outputs the report as JSON.
func (w *JSONWriter) Write(report *model.RunReport) (int, error) {
	summary := model.NewSummary(report)

	out := jsonReport{
		Source:        report.Source,
		DateChecked:   report.DateChecked,
		Authenticated: report.Authenticated,
		ElapsedMS:     report.Elapsed.Milliseconds(),
		Summary: jsonSummary{
			Total:     summary.TotalChecked(),
			Counts:    summary.CountsByName,
			DeadLinks: summary.DeadLinks,
		},
		Results: report.Results,
	}

	var (
		data []byte
		err  error
	)
	if w.prettyPrint {
		data, err = json.MarshalIndent(out, "", "  ")
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return 0, err
	}
	data = append(data, '\n')

	return w.output.Write(data)
}
