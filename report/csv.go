// SPDX-License-Identifier: MIT

package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/kpaths/ksp"
)

// WriteCSV writes the header and one row per path to w.
func WriteCSV(w io.Writer, paths []ksp.Path) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("report: csv header: %w", err)
	}
	for i, p := range paths {
		row := []string{
			fmt.Sprintf("Path %d: %s", i+1, p),
			formatCost(p.Cost),
			strconv.Itoa(p.Hops),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("report: csv row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("report: csv flush: %w", err)
	}

	return nil
}

// CSVSink writes one CSV file per query into a directory.
type CSVSink struct {
	dir   string
	runID string
}

// NewCSVSink returns a sink writing under dir; runID goes into file names so
// repeated runs on the same day never overwrite each other.
func NewCSVSink(dir, runID string) *CSVSink {
	return &CSVSink{dir: dir, runID: runID}
}

// Path returns the file the sink writes for q.
func (s *CSVSink) Path(q ksp.Query) string {
	return filepath.Join(s.dir, FileName(q, s.runID))
}

// Write implements Sink. An empty result still produces a header-only file.
func (s *CSVSink) Write(ctx context.Context, q ksp.Query, paths []ksp.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("report: create %s: %w", s.dir, err)
	}

	name := s.Path(q)
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", name, err)
	}
	if err = WriteCSV(f, paths); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", name, err)
	}

	return f.Close()
}
