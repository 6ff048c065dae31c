package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nao1215/repocheck/internal/model"
)

// TestJSONWriterWrite tests the JSON report shape.
func TestJSONWriterWrite(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	writer := NewJSONWriter(&buf)

	n, err := writer.Write(testReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != buf.Len() {
		t.Errorf("reported %d bytes, wrote %d", n, buf.Len())
	}

	var decoded struct {
		Source        string `json:"source"`
		Authenticated bool   `json:"authenticated"`
		Summary       struct {
			Total     int            `json:"total"`
			Counts    map[string]int `json:"counts"`
			DeadLinks []string       `json:"dead_links"`
		} `json:"summary"`
		Results []struct {
			URL    string `json:"url"`
			Status string `json:"status"`
		} `json:"results"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}

	if decoded.Source != "urls.txt" {
		t.Errorf("source = %q, want urls.txt", decoded.Source)
	}
	if !decoded.Authenticated {
		t.Error("expected authenticated = true")
	}
	if decoded.Summary.Total != 4 {
		t.Errorf("summary total = %d, want 4", decoded.Summary.Total)
	}
	if decoded.Summary.Counts["EXISTS"] != 1 {
		t.Errorf("EXISTS count = %d, want 1", decoded.Summary.Counts["EXISTS"])
	}
	if decoded.Summary.Counts["ERROR"] != 0 {
		t.Errorf("ERROR count = %d, want 0", decoded.Summary.Counts["ERROR"])
	}
	if len(decoded.Summary.DeadLinks) != 3 {
		t.Errorf("dead links = %d, want 3", len(decoded.Summary.DeadLinks))
	}
	if len(decoded.Results) != 4 {
		t.Fatalf("results = %d, want 4", len(decoded.Results))
	}
	if decoded.Results[1].Status != "NOT_FOUND" {
		t.Errorf("results[1].status = %q, want NOT_FOUND", decoded.Results[1].Status)
	}
	if decoded.Results[2].URL != "not-a-url" {
		t.Errorf("results[2].url = %q, want not-a-url", decoded.Results[2].URL)
	}
}

// TestJSONWriterPrettyPrint tests indented output.
func TestJSONWriterPrettyPrint(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	writer := NewJSONWriter(&buf, WithPrettyPrint())

	if _, err := writer.Write(testReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Error("expected indented output")
	}
	if !json.Valid(buf.Bytes()) {
		t.Error("pretty output is not valid JSON")
	}
}

// TestJSONWriterEmptyReport tests serialization of an empty run.
func TestJSONWriterEmptyReport(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	writer := NewJSONWriter(&buf)

	if _, err := writer.Write(model.NewRunReport("empty.txt", false)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
}
