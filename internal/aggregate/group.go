// Package aggregate turns flat metric rows into comparable rate statistics.
//
// Every function here is a pure function of its arguments. Rates are always
// recomputed from summed counts (see metrics.Rate); the percentages carried
// by individual rows are never averaged. Rows that lack the dimension an
// aggregation is keyed on are left out of that aggregation rather than being
// placed in a catch-all bucket, so mixing granularities cannot corrupt sums.
package aggregate

import "github.com/testforge/testforge/internal/models"

// keyed is implemented by both row families.
type keyed interface {
	Key(dim models.Dimension) (string, bool)
}

// Pair is a two-dimension group key.
type Pair struct {
	A string
	B string
}

// Groups maps keys to the rows sharing them, remembering the order in which
// keys were first seen.
type Groups[K comparable, R any] struct {
	keys []K
	rows map[K][]R
}

// Keys returns the group keys in first-seen order.
func (g *Groups[K, R]) Keys() []K {
	return g.keys
}

// Rows returns the rows for k, or nil if no row had that key.
func (g *Groups[K, R]) Rows(k K) []R {
	return g.rows[k]
}

// Len returns the number of groups.
func (g *Groups[K, R]) Len() int {
	return len(g.keys)
}

// GroupBy partitions rows by key. Rows for which key reports false are
// dropped.
func GroupBy[K comparable, R any](rows []R, key func(R) (K, bool)) *Groups[K, R] {
	g := &Groups[K, R]{rows: make(map[K][]R)}
	for _, r := range rows {
		k, ok := key(r)
		if !ok {
			continue
		}
		if _, seen := g.rows[k]; !seen {
			g.keys = append(g.keys, k)
		}
		g.rows[k] = append(g.rows[k], r)
	}
	return g
}

// By returns a key function for a single dimension.
func By[R keyed](dim models.Dimension) func(R) (string, bool) {
	return func(r R) (string, bool) {
		return r.Key(dim)
	}
}

// ByPair returns a key function for two dimensions. A row is keyed only when
// it carries both.
func ByPair[R keyed](a, b models.Dimension) func(R) (Pair, bool) {
	return func(r R) (Pair, bool) {
		va, ok := r.Key(a)
		if !ok {
			return Pair{}, false
		}
		vb, ok := r.Key(b)
		if !ok {
			return Pair{}, false
		}
		return Pair{A: va, B: vb}, true
	}
}

// unionKeys returns the keys of a followed by the keys of b not already in a.
func unionKeys(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, keys := range [][]string{a, b} {
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				out = append(out, k)
			}
		}
	}
	return out
}
