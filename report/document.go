package report

import (
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/weiihann/kernbench/harness"
)

// Document is the machine-readable record of one suite invocation.
type Document struct {
	RunID     string           `json:"run_id"`
	Timestamp string           `json:"timestamp"`
	GoVersion string           `json:"go_version"`
	OS        string           `json:"os"`
	Arch      string           `json:"arch"`
	Isolated  bool             `json:"isolated"`
	Summaries []Summary        `json:"summaries"`
	Results   []harness.Result `json:"results"`
}

// NewDocument summarizes results under a fresh run id.
func NewDocument(results []harness.Result, isolated bool) Document {
	return Document{
		RunID:     uuid.NewString(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		Isolated:  isolated,
		Summaries: Summarize(results),
		Results:   results,
	}
}
