package repositories

import (
	"fmt"
	"strings"
)

// Predicate is one active exact-match filter. A nil predicate is inactive.
type Predicate[T any] func(T) bool

// Query describes a list view: free-text search over Fields plus filters.
type Query[T any] struct {
	Search  string
	Fields  func(T) []string
	Filters []Predicate[T]
}

// Filter returns the records matching every active predicate, in their
// original order. A blank search matches everything.
func Filter[T any](items []T, q Query[T]) []T {
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]T, 0, len(items))
	for _, it := range items {
		if needle != "" && !containsAny(q.Fields, it, needle) {
			continue
		}
		if !matchAll(q.Filters, it) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func containsAny[T any](fields func(T) []string, it T, needle string) bool {
	if fields == nil {
		return false
	}
	for _, f := range fields(it) {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func matchAll[T any](preds []Predicate[T], it T) bool {
	for _, p := range preds {
		if p != nil && !p(it) {
			return false
		}
	}
	return true
}

// Equals builds an exact-match filter on one field. Blank and "all" mean no
// filter; comparison ignores case so "confirmed" selects "Confirmed".
func Equals[T any](want string, get func(T) string) Predicate[T] {
	want = strings.TrimSpace(want)
	if want == "" || strings.EqualFold(want, "all") {
		return nil
	}
	return func(it T) bool {
		return strings.EqualFold(get(it), want)
	}
}

// Page is a filtered view ready to render, including its empty state.
type Page[T any] struct {
	Items        []T    `json:"items"`
	Total        int    `json:"total"`
	Matched      int    `json:"matched"`
	Search       string `json:"search,omitempty"`
	EmptyMessage string `json:"empty_message,omitempty"`
}

func NewPage[T any](noun string, all []T, q Query[T]) Page[T] {
	items := Filter(all, q)
	p := Page[T]{
		Items:   items,
		Total:   len(all),
		Matched: len(items),
		Search:  strings.TrimSpace(q.Search),
	}
	if len(items) == 0 {
		if p.Search != "" {
			p.EmptyMessage = fmt.Sprintf("No %s match %q", noun, p.Search)
		} else {
			p.EmptyMessage = fmt.Sprintf("No %s found", noun)
		}
	}
	return p
}

func (p Page[T]) Empty() bool { return p.Matched == 0 }
