// SPDX-License-Identifier: MIT

package report

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/katalvlaran/kpaths/ksp"
)

// MultiSink writes to every sink in order and joins their errors.
type MultiSink []Sink

// Write implements Sink. A failing sink does not stop the others.
func (m MultiSink) Write(ctx context.Context, q ksp.Query, paths []ksp.Path) error {
	var errs []error
	for _, s := range m {
		if err := s.Write(ctx, q, paths); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// DatedDir creates and returns base/YYYY-MM-DD for now.
func DatedDir(base string, now time.Time) (string, error) {
	dir := filepath.Join(base, now.Format(dateLayout))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("report: dated dir: %w", err)
	}

	return dir, nil
}

// FileName is the CSV file name for q: paths_<source>_<target>[_<run>].csv.
// Characters unsafe in file names are replaced with '-'; runID is cut to its
// first 8 characters.
func FileName(q ksp.Query, runID string) string {
	name := "paths_" + sanitize(q.Source) + "_" + sanitize(q.Target)
	if runID != "" {
		if len(runID) > 8 {
			runID = runID[:8]
		}
		name += "_" + sanitize(runID)
	}

	return name + ".csv"
}

// sanitize keeps letters, digits, '.', '-' and replaces everything else.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-':
			return r
		default:
			return '-'
		}
	}, s)
}
