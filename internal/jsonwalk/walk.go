// Package jsonwalk locates entity-shaped objects inside arbitrarily nested,
// possibly shared-reference JSON documents without knowing their schema. Both
// upstreams bury the interesting objects at nesting depths that move between
// feed versions, so callers search structurally instead of hard-coding paths.
package jsonwalk

import (
	"reflect"
	"sort"
)

// MaxDepth bounds the traversal. Nothing of interest has ever appeared below
// this in either provider's feeds.
const MaxDepth = 20

// Predicate reports whether an object node is one of the entities being
// searched for.
type Predicate func(obj map[string]any) bool

// Find walks a JSON-decoded value and returns every object satisfying pred,
// in discovery order. Object keys are visited sorted so discovery order is
// deterministic. A value reachable through multiple paths is matched at most
// once and its subtree walked at most once; identity tracking makes cyclic
// documents terminate.
func Find(root any, pred Predicate) []map[string]any {
	w := walker{pred: pred, visited: make(map[uintptr]struct{})}
	w.walk(root, 0)
	return w.matches
}

type walker struct {
	pred    Predicate
	visited map[uintptr]struct{}
	matches []map[string]any
}

func (w *walker) walk(node any, depth int) {
	if node == nil || depth > MaxDepth {
		return
	}
	switch v := node.(type) {
	case map[string]any:
		if !w.visit(v) {
			return
		}
		if w.pred(v) {
			w.matches = append(w.matches, v)
		}
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			w.walk(v[k], depth+1)
		}
	case []any:
		if !w.visit(v) {
			return
		}
		for _, item := range v {
			w.walk(item, depth+1)
		}
	}
}

// visit records the identity of a map or slice, reporting false when that
// exact container was already walked.
func (w *walker) visit(container any) bool {
	ptr := reflect.ValueOf(container).Pointer()
	if ptr == 0 {
		// nil map/slice; nothing to walk but nothing to guard either.
		return true
	}
	if _, seen := w.visited[ptr]; seen {
		return false
	}
	w.visited[ptr] = struct{}{}
	return true
}
