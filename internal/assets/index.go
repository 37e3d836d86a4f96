package assets

import (
	"path"
	"sort"
	"strings"
)

// Index is one immutable snapshot of the asset directory: the ordered
// sequence, its named subsets and the slot table.
type Index struct {
	Generation uint64
	Sequence   Sequence
	Subsets    Subsets

	slots    Slots
	byKey    map[string]Asset
	byName   map[string]Asset
	shadowed []Shadow
}

// Shadow records a file whose content key was already taken by an earlier
// file in sequence order, so slot lookups never reach it.
type Shadow struct {
	Key    string
	Winner string
	Loser  string
}

// NewIndex orders entries and derives subsets and key lookups from them.
func NewIndex(entries map[string]Asset, ranges Ranges, slots Slots) *Index {
	seq := BuildSequence(entries)

	ix := &Index{
		Sequence: seq,
		Subsets:  NamedSubsets(seq, ranges),
		slots:    slots.normalize(),
		byKey:    make(map[string]Asset, len(seq)*2),
		byName:   make(map[string]Asset, len(seq)),
	}

	// First asset in sequence order wins when two files share a key.
	for _, a := range seq {
		ix.byName[a.Name] = a
		stem := strings.ToLower(strings.TrimSuffix(a.Name, path.Ext(a.Name)))
		keys := []string{a.Key}
		if stem != a.Key {
			keys = append(keys, stem)
		}
		for _, k := range keys {
			if k == "" {
				continue
			}
			if prev, ok := ix.byKey[k]; ok {
				if prev.Name != a.Name {
					ix.shadowed = append(ix.shadowed, Shadow{Key: k, Winner: prev.Name, Loser: a.Name})
				}
				continue
			}
			ix.byKey[k] = a
		}
	}
	return ix
}

// Shadowed lists files that lost a content key to an earlier file.
func (ix *Index) Shadowed() []Shadow {
	if ix == nil {
		return nil
	}
	return append([]Shadow(nil), ix.shadowed...)
}

// Resolve returns the image bound to slot. The slot table is consulted
// first; an unbound slot name is itself tried as a content key. A missing
// image reports false and the caller renders without it.
func (ix *Index) Resolve(slot string) (Asset, bool) {
	if ix == nil {
		return Asset{}, false
	}
	key := strings.ToLower(strings.TrimSpace(slot))
	if bound, ok := ix.slots[key]; ok {
		key = bound
	}
	a, ok := ix.byKey[key]
	return a, ok
}

// Lookup finds an indexed asset by file name.
func (ix *Index) Lookup(name string) (Asset, bool) {
	if ix == nil {
		return Asset{}, false
	}
	a, ok := ix.byName[name]
	return a, ok
}

// SlotNames returns the configured slot names, sorted.
func (ix *Index) SlotNames() []string {
	names := make([]string, 0, len(ix.slots))
	for s := range ix.slots {
		names = append(names, s)
	}
	sort.Strings(names)
	return names
}

// Len is the number of indexed assets.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.Sequence)
}
