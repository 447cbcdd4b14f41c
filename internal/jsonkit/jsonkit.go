// Package jsonkit wraps fast JSON parsing and manipulation for
// collaborators that cache serialized documents: normalization to a
// canonical compact form, pretty-printing, validation, and dot-path
// extraction.
package jsonkit

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
)

// Normalize parses input and re-serializes it compactly. Invalid JSON
// is an error; valid JSON comes back with stable, minimal formatting,
// suitable for use as a cache value.
func Normalize(input []byte) ([]byte, error) {
	var v any
	if err := json.Unmarshal(input, &v); err != nil {
		return nil, fmt.Errorf("jsonkit: parse: %w", err)
	}
	out, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("jsonkit: stringify: %w", err)
	}
	return out, nil
}

// Prettify parses input and re-serializes it indented.
func Prettify(input []byte) ([]byte, error) {
	var v any
	if err := json.Unmarshal(input, &v); err != nil {
		return nil, fmt.Errorf("jsonkit: parse: %w", err)
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("jsonkit: prettify: %w", err)
	}
	return out, nil
}

// Valid reports whether input is well-formed JSON.
func Valid(input []byte) bool {
	return json.Valid(input)
}

// Get extracts the value at a dot-notation path ("a.b.0.c") and
// returns it re-serialized. Object fields are addressed by name, array
// elements by decimal index.
func Get(input []byte, path string) ([]byte, error) {
	var v any
	if err := json.Unmarshal(input, &v); err != nil {
		return nil, fmt.Errorf("jsonkit: parse: %w", err)
	}

	current := v
	for _, seg := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			child, ok := node[seg]
			if !ok {
				return nil, fmt.Errorf("jsonkit: path not found: %s", seg)
			}
			current = child
		case []any:
			idx, err := strconv.Atoi(seg)
			if err != nil {
				return nil, fmt.Errorf("jsonkit: invalid array index %q", seg)
			}
			if idx < 0 || idx >= len(node) {
				return nil, fmt.Errorf("jsonkit: array index out of bounds: %d", idx)
			}
			current = node[idx]
		default:
			return nil, fmt.Errorf("jsonkit: cannot traverse non-object/array at %q", seg)
		}
	}

	out, err := json.Marshal(current)
	if err != nil {
		return nil, fmt.Errorf("jsonkit: stringify: %w", err)
	}
	return out, nil
}

// NormalizeBatch normalizes every document, preserving order. The
// whole batch fails on the first invalid document.
func NormalizeBatch(inputs [][]byte) ([][]byte, error) {
	out := make([][]byte, len(inputs))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, doc := range inputs {
		g.Go(func() error {
			n, err := Normalize(doc)
			if err != nil {
				return err
			}
			out[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
