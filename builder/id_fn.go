// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based vertex index to its vertex ID. It must be pure:
// the same index always yields the same ID.
type IDFn func(idx int) string

// DefaultIDFn names vertices "0", "1", "2", ...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn names vertices "A".."Z", as in hand-drawn topologies.
// Panics outside [0,25]; use ExcelColumnIDFn for larger fixtures.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("builder: SymbolIDFn index %d out of [0,25]", idx))
	}

	return string(rune('A' + idx))
}

// ExcelColumnIDFn names vertices like spreadsheet columns:
// "A".."Z", "AA".."AZ", "BA", ... Panics on idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("builder: ExcelColumnIDFn index %d is negative", idx))
	}
	var buf [16]byte
	pos := len(buf)
	for n := idx + 1; n > 0; n = (n - 1) / 26 {
		pos--
		buf[pos] = byte('A' + (n-1)%26)
	}

	return string(buf[pos:])
}

// PrefixIDFn names vertices prefix+N with N counted from first, e.g.
// PrefixIDFn("R", 1) yields "R1", "R2", ... like router names in a
// topology document.
func PrefixIDFn(prefix string, first int) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(first+idx)
	}
}

// WithSymbolIDs selects SymbolIDFn.
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}

// WithExcelColumnIDs selects ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}

// WithPrefixIDs selects PrefixIDFn(prefix, first).
func WithPrefixIDs(prefix string, first int) BuilderOption {
	return WithIDScheme(PrefixIDFn(prefix, first))
}
