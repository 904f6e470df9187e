package filter

import (
	"fmt"
	"regexp"

	"go.uber.org/multierr"
)

// TokenFilter decides whether a token takes part in the sort
type TokenFilter interface {
	Matches(token string) bool
}

// RegexFilter filters tokens based on a regex pattern
type RegexFilter struct {
	pattern *regexp.Regexp
	invert  bool // if true, exclude matches instead of include
}

// NewRegexFilter creates a new regex filter
func NewRegexFilter(pattern string, invert bool) (*RegexFilter, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to compile regex pattern %q: %w", pattern, err)
	}

	return &RegexFilter{
		pattern: re,
		invert:  invert,
	}, nil
}

// Matches returns true if the token matches the filter criteria
func (f *RegexFilter) Matches(token string) bool {
	matches := f.pattern.MatchString(token)
	if f.invert {
		return !matches
	}
	return matches
}

// CompositeFilter combines multiple filters
type CompositeFilter struct {
	filters []TokenFilter
}

// NewCompositeFilter creates a new composite filter
func NewCompositeFilter(filters ...TokenFilter) *CompositeFilter {
	return &CompositeFilter{
		filters: filters,
	}
}

// Matches returns true if all filters match (AND logic)
func (f *CompositeFilter) Matches(token string) bool {
	for _, filter := range f.filters {
		if !filter.Matches(token) {
			return false
		}
	}
	return true
}

// Compile builds one filter from include and exclude patterns. It returns
// nil when no pattern is given. Every invalid pattern is reported
func Compile(include, exclude []string) (TokenFilter, error) {
	var (
		filters []TokenFilter
		errs    error
	)
	add := func(patterns []string, invert bool) {
		for _, p := range patterns {
			f, err := NewRegexFilter(p, invert)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			filters = append(filters, f)
		}
	}
	add(include, false)
	add(exclude, true)

	if errs != nil {
		return nil, errs
	}
	switch len(filters) {
	case 0:
		return nil, nil
	case 1:
		return filters[0], nil
	default:
		return NewCompositeFilter(filters...), nil
	}
}

// FilterTokens filters tokens based on the provided filter
func FilterTokens(tokens []string, filter TokenFilter) []string {
	if filter == nil {
		return tokens
	}

	var filtered []string
	for _, token := range tokens {
		if filter.Matches(token) {
			filtered = append(filtered, token)
		}
	}
	return filtered
}
