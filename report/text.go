// SPDX-License-Identifier: MIT

package report

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/katalvlaran/kpaths/ksp"
)

// TextSink prints a human-readable listing. Safe for concurrent use: each
// query's block is written under one lock so blocks never interleave.
type TextSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewTextSink returns a TextSink writing to w.
func NewTextSink(w io.Writer) (*TextSink, error) {
	if w == nil {
		return nil, ErrNilWriter
	}

	return &TextSink{w: w}, nil
}

// Write implements Sink.
func (s *TextSink) Write(ctx context.Context, q ksp.Query, paths []ksp.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder
	if len(paths) == 0 {
		fmt.Fprintf(&b, "\nNo paths found from %s to %s.\n", q.Source, q.Target)
	} else {
		fmt.Fprintf(&b, "\nThe %d best paths from %s to %s are:\n\n", len(paths), q.Source, q.Target)
		for i, p := range paths {
			fmt.Fprintf(&b, "Path %d: %s\n", i+1, p)
			fmt.Fprintf(&b, "  Total cost: %s\n", formatCost(p.Cost))
			fmt.Fprintf(&b, "  Hops: %d\n\n", p.Hops)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := io.WriteString(s.w, b.String()); err != nil {
		return fmt.Errorf("report: text: %w", err)
	}

	return nil
}
