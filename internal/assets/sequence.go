package assets

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ToEnd as a Subset end offset means "to the end of the sequence".
const ToEnd = -1

// Sequence is an ordered list of assets. It is never mutated after it is
// built; Subset returns views that share the backing array, so callers must
// not write through them.
type Sequence []Asset

// BuildSequence orders the path → asset mapping produced by the asset
// loader. Paths are compared with a locale-aware collator that treats digit
// runs numerically, so "img2" sorts before "img10". The result depends only
// on the set of entries, never on map iteration order. An empty mapping
// yields an empty sequence.
func BuildSequence(entries map[string]Asset) Sequence {
	type pair struct {
		path  string
		asset Asset
	}

	pairs := make([]pair, 0, len(entries))
	for p, a := range entries {
		pairs = append(pairs, pair{path: p, asset: a})
	}

	col := collate.New(language.Und, collate.Numeric)
	sort.Slice(pairs, func(i, j int) bool {
		if c := col.CompareString(pairs[i].path, pairs[j].path); c != 0 {
			return c < 0
		}
		// Collation-equal paths still need a total order.
		return strings.Compare(pairs[i].path, pairs[j].path) < 0
	})

	seq := make(Sequence, len(pairs))
	for i, p := range pairs {
		seq[i] = p.asset
	}
	return seq
}

// Len returns the number of assets in the sequence.
func (s Sequence) Len() int { return len(s) }

// At returns the asset at position i, or false when i is out of range.
func (s Sequence) At(i int) (Asset, bool) {
	if i < 0 || i >= len(s) {
		return Asset{}, false
	}
	return s[i], true
}

// Subset slices the sequence from start (inclusive) to end (exclusive).
// ToEnd means to the end of the sequence. Offsets past either bound are
// clamped, so out-of-range requests return a shorter or empty sequence
// rather than failing.
func (s Sequence) Subset(start, end int) Sequence {
	if start < 0 {
		start = 0
	}
	if end == ToEnd || end > len(s) {
		end = len(s)
	}
	if start >= end {
		return Sequence{}
	}
	return s[start:end:end]
}

// URLs projects the sequence to its asset references.
func (s Sequence) URLs() []string {
	out := make([]string, len(s))
	for i, a := range s {
		out[i] = a.URL
	}
	return out
}
