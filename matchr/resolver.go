// Package matchr implements cbr.TitleResolver with string similarity metrics
// from github.com/antzucaro/matchr.
package matchr

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/Miidoriya/cbr"
	"github.com/antzucaro/matchr"
)

// MaxScore is the score of two identical strings.
const MaxScore = 100.0

// Metric scores the similarity of two strings in [0, MaxScore].
type Metric func(a, b string) float64

// Ratio is the normalized Levenshtein similarity: MaxScore minus the share
// of the longer string that has to be edited.
func Ratio(a, b string) float64 {
	if a == b {
		return MaxScore
	}
	n := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	d := min(matchr.Levenshtein(a, b), n)
	return MaxScore * float64(n-d) / float64(n)
}

// JaroWinkler is the Jaro-Winkler similarity scaled to [0, MaxScore].
// It favors candidates sharing a prefix with the query.
func JaroWinkler(a, b string) float64 {
	if a == b {
		return MaxScore
	}
	return MaxScore * matchr.JaroWinkler(a, b, false)
}

// ParseMetric returns the metric registered under name.
func ParseMetric(name string) (Metric, error) {
	switch name {
	case "", "ratio":
		return Ratio, nil
	case "jaro-winkler":
		return JaroWinkler, nil
	}
	return nil, cbr.Errorf(cbr.EINVALID, "unknown similarity metric %q", name)
}

// Ensure Resolver implements cbr.TitleResolver at compile time.
var _ cbr.TitleResolver = (*Resolver)(nil)

// Resolver ranks candidate titles by similarity to a query.
// Resolver holds no mutable state and is safe for concurrent use.
type Resolver struct {
	metric   Metric
	caseFold bool
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMetric sets the similarity metric.
// Defaults to Ratio if not specified.
func WithMetric(m Metric) Option {
	return func(r *Resolver) {
		r.metric = m
	}
}

// WithCaseFold compares query and candidates case-insensitively.
func WithCaseFold(fold bool) Option {
	return func(r *Resolver) {
		r.caseFold = fold
	}
}

// NewResolver creates a new Resolver.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{metric: Ratio}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Score returns the similarity of query and candidate.
func (r *Resolver) Score(query, candidate string) float64 {
	query, candidate = strings.TrimSpace(query), strings.TrimSpace(candidate)
	if r.caseFold {
		query, candidate = strings.ToLower(query), strings.ToLower(candidate)
	}
	return r.metric(query, candidate)
}

// Resolve returns the candidates scoring strictly above threshold, best
// first. A candidate scoring MaxScore is kept at any threshold. Candidates
// with equal scores keep their input order.
func (r *Resolver) Resolve(query string, candidates []string, threshold float64) []cbr.Match {
	matches := []cbr.Match{}
	for i, c := range candidates {
		score := r.Score(query, c)
		if score > threshold || score >= MaxScore {
			matches = append(matches, cbr.Match{Index: i, Text: c, Score: score})
		}
	}
	slices.SortStableFunc(matches, func(a, b cbr.Match) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return matches
}
