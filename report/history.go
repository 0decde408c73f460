package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/weiihann/kernbench/kernel"
)

// Record is one history entry: one kernel of one suite invocation.
type Record struct {
	RunID         string         `json:"run_id"`
	Timestamp     string         `json:"timestamp"`
	Kernel        string         `json:"kernel"`
	Category      string         `json:"category"`
	Seed          int64          `json:"seed"`
	Runs          int            `json:"runs"`
	Times         []float64      `json:"times"`
	MedianSeconds float64        `json:"median_seconds"`
	Witness       kernel.Witness `json:"witness"`
	GoVersion     string         `json:"go_version"`
	Isolated      bool           `json:"isolated"`
}

// AppendHistory appends one Record per summary in doc to the JSON array
// stored at path, creating the file if needed. History is only written;
// nothing compares runs against it.
func AppendHistory(path string, doc Document) error {
	records, err := ReadHistory(path)
	if err != nil {
		return err
	}

	for _, s := range doc.Summaries {
		records = append(records, Record{
			RunID:         doc.RunID,
			Timestamp:     doc.Timestamp,
			Kernel:        s.Kernel,
			Category:      s.Category,
			Seed:          s.Seed,
			Runs:          s.Runs,
			Times:         s.Times,
			MedianSeconds: s.MedianSeconds,
			Witness:       s.Witness,
			GoVersion:     doc.GoVersion,
			Isolated:      doc.Isolated,
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".kernbench-history-*")
	if err != nil {
		return fmt.Errorf("create temp history: %w", err)
	}

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return fmt.Errorf("write history: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("close history: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("replace history %s: %w", path, err)
	}

	return nil
}

// ReadHistory returns the records stored at path. A missing file is an
// empty history.
func ReadHistory(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history %s: %w", path, err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode history %s: %w", path, err)
	}

	return records, nil
}
