// SPDX-License-Identifier: MIT

package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/kpaths/core"
)

// Load parses an adjacency document from r into a new *core.Graph.
//
// Steps:
//  1. Decode the top-level object, keeping each adjacency list raw.
//  2. Insert every key as a vertex in sorted order.
//  3. For each key (sorted), parse its entries and add edges in listed order.
//
// Complexity: O(V log V + E).
func Load(r io.Reader) (*core.Graph, error) {
	// 1) Decode the document shell.
	var doc map[string]json.RawMessage
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: top-level value is null", ErrMalformedDocument)
	}
	// Exactly one value: anything but whitespace after it is an error.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: extra data after the top-level object", ErrMalformedDocument)
	}

	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// 2) Vertices first, so isolated keys survive.
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	for _, k := range keys {
		if err := g.AddVertex(k); err != nil {
			return nil, &GraphLoadError{Node: k, Index: -1, Err: err}
		}
	}

	// 3) Edges in listed order.
	var (
		to string
		w  float64
	)
	for _, k := range keys {
		entries, err := parseList(doc[k])
		if err != nil {
			return nil, &GraphLoadError{Node: k, Index: -1, Err: err}
		}
		for i, raw := range entries {
			if to, w, err = parseEntry(raw); err != nil {
				return nil, &GraphLoadError{Node: k, Index: i, Err: err}
			}
			if _, err = g.AddEdge(k, to, w); err != nil {
				return nil, &GraphLoadError{Node: k, Index: i, Err: err}
			}
		}
	}

	return g, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Dump writes g in array-entry form: every vertex is a key, sinks map to [].
// Output is stable (sorted keys, adjacency in insertion order) and loads back
// into an equivalent graph.
func Dump(w io.Writer, g *core.Graph) error {
	doc := make(map[string][][2]any, g.VertexCount())
	for _, id := range g.Vertices() {
		out, err := g.Neighbors(id)
		if err != nil {
			return fmt.Errorf("loader: dump %q: %w", id, err)
		}
		list := make([][2]any, 0, len(out))
		for _, e := range out {
			list = append(list, [2]any{e.To, e.Weight})
		}
		doc[id] = list
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("loader: encode: %w", err)
	}

	return nil
}

// parseList decodes one adjacency value into its raw entries.
func parseList(raw json.RawMessage) ([]json.RawMessage, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, errNotList
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", errNotList, err)
	}

	return entries, nil
}

// parseEntry accepts [neighbor, weight] or {"to": neighbor, "weight": w}.
func parseEntry(raw json.RawMessage) (string, float64, error) {
	var toRaw, wRaw json.RawMessage

	raw = bytes.TrimSpace(raw)
	switch {
	case len(raw) > 0 && raw[0] == '[':
		var pair []json.RawMessage
		if err := json.Unmarshal(raw, &pair); err != nil {
			return "", 0, fmt.Errorf("%w: %v", errBadEntry, err)
		}
		if len(pair) != 2 {
			return "", 0, fmt.Errorf("%w: got %d elements", errBadArity, len(pair))
		}
		toRaw, wRaw = pair[0], pair[1]
	case len(raw) > 0 && raw[0] == '{':
		var obj struct {
			To     json.RawMessage `json:"to"`
			Weight json.RawMessage `json:"weight"`
		}
		if err := json.Unmarshal(raw, &obj); err != nil {
			return "", 0, fmt.Errorf("%w: %v", errBadEntry, err)
		}
		toRaw, wRaw = obj.To, obj.Weight
	default:
		return "", 0, errBadEntry
	}

	to, err := parseNeighbor(toRaw)
	if err != nil {
		return "", 0, err
	}
	w, err := parseWeight(wRaw)
	if err != nil {
		return "", 0, err
	}

	return to, w, nil
}

// parseNeighbor requires a non-empty JSON string.
func parseNeighbor(raw json.RawMessage) (string, error) {
	var to string
	if len(raw) == 0 || json.Unmarshal(raw, &to) != nil || to == "" {
		return "", errMissingNeighbor
	}

	return to, nil
}

// parseWeight coerces a JSON number or numeric string to a finite float64.
func parseWeight(raw json.RawMessage) (float64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0, errMissingWeight
	}

	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, fmt.Errorf("%w: %s", errNonNumeric, raw)
		}
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errNonNumeric, raw)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, fmt.Errorf("%w: %s", errNonFinite, raw)
	}

	return w, nil
}
