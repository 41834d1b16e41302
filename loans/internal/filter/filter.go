// Package filter composes in-memory predicates over entity snapshots.
package filter

import (
	"strings"
)

type Predicate[T any] func(T) bool

// Apply returns the subsequence of items matching every predicate.
// Nil predicates are skipped; items is never modified.
func Apply[T any](items []T, preds ...Predicate[T]) []T {
	active := make([]Predicate[T], 0, len(preds))
	for _, p := range preds {
		if p != nil {
			active = append(active, p)
		}
	}
	out := make([]T, 0, len(items))
next:
	for _, it := range items {
		for _, p := range active {
			if !p(it) {
				continue next
			}
		}
		out = append(out, it)
	}
	return out
}

// Contains matches term case-insensitively as a substring of any field.
// An empty term matches everything.
func Contains[T any](fields func(T) []string, term string) Predicate[T] {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}
	return func(it T) bool {
		for _, f := range fields(it) {
			if strings.Contains(strings.ToLower(f), term) {
				return true
			}
		}
		return false
	}
}

// Equal matches when get(item) equals want; a nil want matches everything.
func Equal[T any, V comparable](get func(T) V, want *V) Predicate[T] {
	if want == nil {
		return nil
	}
	w := *want
	return func(it T) bool { return get(it) == w }
}
