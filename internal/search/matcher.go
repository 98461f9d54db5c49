// Package search filters in-memory record collections against free-text
// queries, tolerating small typos.
package search

import (
	"strings"
	"unicode/utf8"
)

// DefaultThreshold is the maximum edit distance tolerated between a query and
// a field token when the caller has no preference.
const DefaultThreshold = 2

const (
	// Queries shorter than this only match as literal substrings.
	minFuzzyQueryLen = 3
	// Tokens longer than this get one extra edit of slack.
	longTokenLen = 5
)

// Field selects the searchable string form of one field of T.
type Field[T any] func(T) string

// Matcher holds the searchable fields and threshold for one record type so it
// can be reused across queries.
type Matcher[T any] struct {
	Fields    []Field[T]
	Threshold int
}

// NewMatcher returns a Matcher over fields using DefaultThreshold.
func NewMatcher[T any](fields ...Field[T]) Matcher[T] {
	return Matcher[T]{Fields: fields, Threshold: DefaultThreshold}
}

// Match returns the items relevant to query. See the package-level Match.
func (m Matcher[T]) Match(query string, items []T) []T {
	return Match(query, items, m.Fields, m.Threshold)
}

// Match returns the subsequence of items that are relevant to query, in their
// original order.
//
// An empty query returns items unchanged. A query with fewer than three
// characters after trimming matches only as a case-insensitive substring of
// some field. Longer queries also match when any whitespace-separated token of
// a field is within threshold edits of the query, or threshold+1 edits for
// tokens longer than five characters.
func Match[T any](query string, items []T, fields []Field[T], threshold int) []T {
	if query == "" {
		return items
	}
	if threshold < 0 {
		threshold = 0
	}

	q := strings.ToLower(strings.TrimSpace(query))
	fuzzy := utf8.RuneCountInString(q) >= minFuzzyQueryLen

	out := make([]T, 0, len(items))
	for _, item := range items {
		if relevant(item, fields, q, threshold, fuzzy) {
			out = append(out, item)
		}
	}
	return out
}

func relevant[T any](item T, fields []Field[T], q string, threshold int, fuzzy bool) bool {
	for _, field := range fields {
		value := strings.ToLower(field(item))
		if strings.Contains(value, q) {
			return true
		}
		if fuzzy && tokenMatch(value, q, threshold) {
			return true
		}
	}
	return false
}

func tokenMatch(value, q string, threshold int) bool {
	for _, token := range strings.Fields(value) {
		limit := threshold
		if utf8.RuneCountInString(token) > longTokenLen {
			limit++
		}
		if Distance(token, q) <= limit {
			return true
		}
	}
	return false
}

// Limit truncates items to at most n elements. A negative n means no limit.
func Limit[T any](items []T, n int) []T {
	if n < 0 || len(items) <= n {
		return items
	}
	return items[:n]
}
