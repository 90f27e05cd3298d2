// SPDX-License-Identifier: MIT

package report

import (
	"context"
	"errors"
	"strconv"

	"github.com/katalvlaran/kpaths/ksp"
)

// Sink consumes the ordered result of one query.
type Sink interface {
	Write(ctx context.Context, q ksp.Query, paths []ksp.Path) error
}

// ErrNilWriter is returned by constructors given a nil destination.
var ErrNilWriter = errors.New("report: nil writer")

// csvHeader is the first CSV row.
var csvHeader = []string{"Path", "Total Cost", "Hops"}

// dateLayout names the dated output folders.
const dateLayout = "2006-01-02"

// formatCost prints the shortest exact decimal form of c.
func formatCost(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}
