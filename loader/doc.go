// SPDX-License-Identifier: MIT

// Package loader materializes a *core.Graph from a serialized adjacency
// mapping, and writes one back.
//
// Document format (JSON object, node → list of entries):
//
//	{
//	  "A": [["B", 1], ["C", "4.5"]],
//	  "B": [{"to": "D", "weight": 5}],
//	  "D": []
//	}
//
// An entry is either a two-element array [neighbor, weight] or an object
// {"to": neighbor, "weight": w}. The weight may be a JSON number or a numeric
// string; both coerce to float64. Neighbors that are not keys become vertices
// without outgoing edges.
//
// Determinism:
//
//   - Keys are inserted in sorted order and each key's edges in listed order,
//     so the same document always yields the same edge IDs and neighbor order.
//
// Errors:
//
//   - ErrMalformedDocument: the input is not a JSON object of lists.
//   - *GraphLoadError: one entry is malformed (non-numeric or non-finite weight,
//     missing or empty neighbor, wrong arity). It names the offending node key
//     and matches ErrMalformedEntry under errors.Is.
//
// The loaded graph allows self-loops and parallel edges so any document loads
// verbatim; the search engine ignores both where they cannot form simple paths.
package loader
