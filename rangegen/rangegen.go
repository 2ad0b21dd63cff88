// SPDX-License-Identifier: MIT

// Package rangegen generates range-counting fixtures: a set of distinct keys,
// a list of [lo, hi] queries, and for every query the number of keys k with
// lo <= k <= hi.
//
// Input text:
//
//	k <key> k <key> ... q <a> <b> q <a> <b> ...
//
// Answer text: one "<count> " per query, in query order. A query (a, b) is
// normalized to [min(a,b), max(a,b)], both ends inclusive.
//
// Sampling (all ranges half-open):
//   - nKeys ~ U[Keys.Min, Keys.Max), nQueries ~ U[Queries.Min, Queries.Max).
//   - keys are drawn WITHOUT replacement from Values.
//   - the a's and the b's are each drawn without replacement from Values.
//
// Determinism: draw order is nKeys, nQueries, keys, a's, b's.
package rangegen

import (
	"fmt"
	"math/rand"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/fixturegen/detgen"
	"github.com/katalvlaran/fixturegen/fixture"
)

// Sentinels shared with detgen so one errors.Is covers both generators.
var (
	ErrInvalidRange   = detgen.ErrInvalidRange
	ErrNeedRandSource = detgen.ErrNeedRandSource
	ErrMalformed      = detgen.ErrMalformed
)

const (
	methodNew      = "rangegen.New"
	methodGenerate = "rangegen.Generate"
	methodParse    = "rangegen.Parse"

	tokenKey   = "k"
	tokenQuery = "q"
)

// Spec holds the three ranges of a range-count fixture.
type Spec struct {
	Keys    detgen.IntRange // how many keys
	Queries detgen.IntRange // how many queries
	Values  detgen.IntRange // key and query-bound domain
}

// Query is one inclusive interval question.
type Query struct {
	A, B int
}

// Bounds returns the query normalized to lo <= hi.
func (q Query) Bounds() (lo, hi int) {
	if q.A <= q.B {
		return q.A, q.B
	}
	return q.B, q.A
}

// Generator produces range-count fixtures.
type Generator struct {
	spec Spec
}

var _ fixture.Generator = (*Generator)(nil)

// New validates spec eagerly.
//
// Errors:
//   - ErrInvalidRange when a range is empty or negative, or when the largest
//     key/query count cannot be drawn without replacement from Values.
func New(spec Spec) (*Generator, error) {
	if err := validate(spec); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}
	return &Generator{spec: spec}, nil
}

func validate(s Spec) error {
	for _, r := range []struct {
		name  string
		r     detgen.IntRange
		floor int
	}{
		{"nKeys", s.Keys, 0},
		{"nQueries", s.Queries, 0},
	} {
		if r.r.Min < r.floor || r.r.Min >= r.r.Max {
			return fmt.Errorf("%s range [%d,%d): %w", r.name, r.r.Min, r.r.Max, ErrInvalidRange)
		}
	}
	if s.Values.Min >= s.Values.Max {
		return fmt.Errorf("value range [%d,%d): %w", s.Values.Min, s.Values.Max, ErrInvalidRange)
	}
	width, ok := s.Values.Width()
	if !ok {
		return fmt.Errorf("value range [%d,%d): width overflows int: %w", s.Values.Min, s.Values.Max, ErrInvalidRange)
	}
	if s.Keys.Max-1 > width || s.Queries.Max-1 > width {
		return fmt.Errorf("cannot draw %d keys / %d query bounds from %d distinct values: %w",
			s.Keys.Max-1, s.Queries.Max-1, width, ErrInvalidRange)
	}

	return nil
}

// Case is an unformatted range-count fixture.
type Case struct {
	Keys    []int
	Queries []Query
	Counts  []int
}

// GenerateCase draws one fixture.
// Complexity: O((nKeys + nQueries) · log nKeys) expected.
func (g *Generator) GenerateCase(rng *rand.Rand) (Case, error) {
	if rng == nil {
		return Case{}, fmt.Errorf("%s: %w", methodGenerate, ErrNeedRandSource)
	}
	nKeys := g.spec.Keys.Min + rng.Intn(g.spec.Keys.Max-g.spec.Keys.Min)
	nQueries := g.spec.Queries.Min + rng.Intn(g.spec.Queries.Max-g.spec.Queries.Min)

	keys := sample(rng, g.spec.Values, nKeys)
	as := sample(rng, g.spec.Values, nQueries)
	bs := sample(rng, g.spec.Values, nQueries)

	queries := make([]Query, nQueries)
	var i int
	for i = 0; i < nQueries; i++ {
		queries[i] = Query{A: as[i], B: bs[i]}
	}

	return Case{Keys: keys, Queries: queries, Counts: CountAll(keys, queries)}, nil
}

// Generate draws and formats one fixture.
func (g *Generator) Generate(rng *rand.Rand) (fixture.TestCase, error) {
	c, err := g.GenerateCase(rng)
	if err != nil {
		return fixture.TestCase{}, err
	}
	return Format(c), nil
}

// sample draws n distinct values from [r.Min, r.Max) in draw order.
// Small domains use a partial Fisher–Yates, large ones rejection sampling.
// r was validated, so its width fits in int.
func sample(rng *rand.Rand, r detgen.IntRange, n int) []int {
	width, _ := r.Width()
	out := make([]int, 0, n)
	if width <= 4*n {
		pool := make([]int, width)
		for i := range pool {
			pool[i] = r.Min + i
		}
		var i, j int
		for i = 0; i < n; i++ {
			j = i + rng.Intn(width-i)
			pool[i], pool[j] = pool[j], pool[i]
			out = append(out, pool[i])
		}
		return out
	}

	seen := make(map[int]struct{}, n)
	var v int
	for len(out) < n {
		v = r.Min + rng.Intn(width)
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// CountAll answers every query against keys. keys is not modified.
// Complexity: O(n log n + q log n).
func CountAll(keys []int, queries []Query) []int {
	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	out := make([]int, len(queries))
	for i, q := range queries {
		out[i] = Count(sorted, q)
	}
	return out
}

// Count returns |{k ∈ sorted : lo <= k <= hi}| for sorted ascending keys.
// Complexity: O(log n).
func Count(sorted []int, q Query) int {
	lo, hi := q.Bounds()
	first := sort.SearchInts(sorted, lo)
	last := sort.Search(len(sorted), func(i int) bool { return sorted[i] > hi })
	if last < first {
		return 0
	}
	return last - first
}

// Format renders a Case in the fixture text format.
func Format(c Case) fixture.TestCase {
	var in, ans strings.Builder
	for _, k := range c.Keys {
		in.WriteString(tokenKey + " " + strconv.Itoa(k) + " ")
	}
	for _, q := range c.Queries {
		in.WriteString(tokenQuery + " " + strconv.Itoa(q.A) + " " + strconv.Itoa(q.B) + " ")
	}
	for _, n := range c.Counts {
		ans.WriteString(strconv.Itoa(n) + " ")
	}
	return fixture.TestCase{Input: in.String(), Answer: ans.String()}
}

// Parse reads fixture input text back into keys and queries.
//
// Errors:
//   - ErrMalformed on an unknown token, a missing operand or a bad number.
func Parse(input string) ([]int, []Query, error) {
	f := strings.Fields(input)
	var (
		keys    []int
		queries []Query
		i       int
	)
	for i < len(f) {
		switch f[i] {
		case tokenKey:
			if i+1 >= len(f) {
				return nil, nil, fmt.Errorf("%s: key without value: %w", methodParse, ErrMalformed)
			}
			k, err := strconv.Atoi(f[i+1])
			if err != nil {
				return nil, nil, fmt.Errorf("%s: key %q: %w", methodParse, f[i+1], ErrMalformed)
			}
			keys = append(keys, k)
			i += 2
		case tokenQuery:
			if i+2 >= len(f) {
				return nil, nil, fmt.Errorf("%s: query without bounds: %w", methodParse, ErrMalformed)
			}
			a, errA := strconv.Atoi(f[i+1])
			b, errB := strconv.Atoi(f[i+2])
			if errA != nil || errB != nil {
				return nil, nil, fmt.Errorf("%s: query %q %q: %w", methodParse, f[i+1], f[i+2], ErrMalformed)
			}
			queries = append(queries, Query{A: a, B: b})
			i += 3
		default:
			return nil, nil, fmt.Errorf("%s: token %q: %w", methodParse, f[i], ErrMalformed)
		}
	}

	return keys, queries, nil
}

// ParseCounts reads the answer text.
func ParseCounts(answer string) ([]int, error) {
	f := strings.Fields(answer)
	out := make([]int, len(f))
	for i, s := range f {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%s: count %q: %w", methodParse, s, ErrMalformed)
		}
		out[i] = n
	}
	return out, nil
}
