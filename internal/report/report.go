// Package report builds JSON reports for batch runs over code-point
// lists. Each run gets a fresh UUID so reports from repeated runs of
// the same input can be told apart.
package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"
)

// Result is the outcome for a single input line.
type Result struct {
	Line     int    `json:"line"`
	Input    string `json:"input"`
	Scalar   string `json:"scalar,omitempty"`   // U+XXXX form
	UTF8     string `json:"utf8,omitempty"`     // hex of the encoded bytes
	Narrowed string `json:"narrowed,omitempty"` // hex of the truncated byte
	Diverges bool   `json:"diverges,omitempty"` // narrowed byte is not the encoding
	Error    string `json:"error,omitempty"`
}

// Report is the full record of one batch run.
type Report struct {
	RunID       string   `json:"run_id"`
	Source      string   `json:"source"`
	CreatedAt   string   `json:"created_at"`
	DurationMS  int64    `json:"duration_ms"`
	Processed   int      `json:"processed"`
	Failed      int      `json:"failed"`
	OutputBytes int64    `json:"output_bytes"`
	Digest      string   `json:"blake3,omitempty"` // digest of concatenated encoded output
	Results     []Result `json:"results"`

	started time.Time
}

// New creates a report for a run over the given source path.
func New(source string) *Report {
	now := time.Now()
	return &Report{
		RunID:     uuid.New().String(),
		Source:    source,
		CreatedAt: now.UTC().Format(time.RFC3339),
		Results:   []Result{},
		started:   now,
	}
}

// Add records one result and updates the processed/failed counters.
func (r *Report) Add(res Result) {
	r.Results = append(r.Results, res)
	if res.Error != "" {
		r.Failed++
	} else {
		r.Processed++
	}
}

// Finish stamps the run duration and the digest of the encoded output.
func (r *Report) Finish(digest string, outputBytes int64) {
	r.DurationMS = time.Since(r.started).Milliseconds()
	r.Digest = digest
	r.OutputBytes = outputBytes
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
