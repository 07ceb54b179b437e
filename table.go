package vorbiscomment

import (
	"iter"
	"slices"

	"github.com/elliotchance/orderedmap/v3"
)

// FieldTable is an ordered multimap of fields keyed by identifier.
//
// Fields iterate in the order they were added, regardless of identifier.
// Lookups group identifiers ignoring ASCII case. The zero value is ready to
// use. FieldTable is not safe for concurrent use.
type FieldTable struct {
	entries []Field
	// index maps a normalized identifier to the positions of its entries,
	// keys in order of first insertion.
	index *orderedmap.OrderedMap[string, []int]
}

// NewFieldTable creates an empty table.
func NewFieldTable() *FieldTable {
	return &FieldTable{index: orderedmap.NewOrderedMap[string, []int]()}
}

func (ft *FieldTable) init() {
	if ft.index == nil {
		ft.index = orderedmap.NewOrderedMap[string, []int]()
	}
}

// Add appends a field. Existing fields with the same identifier are kept.
func (ft *FieldTable) Add(f Field) {
	ft.init()
	key := normalizeID(f.ID)
	positions, _ := ft.index.Get(key)
	ft.index.Set(key, append(positions, len(ft.entries)))
	ft.entries = append(ft.entries, f)
}

// Set replaces the value of the first field matching id, or adds a new
// field if none exists.
func (ft *FieldTable) Set(id string, value []byte) {
	ft.init()
	positions, ok := ft.index.Get(normalizeID(id))
	if !ok || len(positions) == 0 {
		ft.Add(Field{ID: id, Value: slices.Clone(value)})
		return
	}
	ft.entries[positions[0]].Value = slices.Clone(value)
}

// Get returns copies of all fields matching id, in insertion order.
func (ft *FieldTable) Get(id string) []Field {
	if ft.index == nil {
		return nil
	}
	positions, _ := ft.index.Get(normalizeID(id))
	if len(positions) == 0 {
		return nil
	}
	out := make([]Field, 0, len(positions))
	for _, pos := range positions {
		f := ft.entries[pos]
		f.Value = slices.Clone(f.Value)
		out = append(out, f)
	}
	return out
}

// First returns a copy of the value of the first field matching id.
func (ft *FieldTable) First(id string) ([]byte, bool) {
	if ft.index == nil {
		return nil, false
	}
	positions, ok := ft.index.Get(normalizeID(id))
	if !ok || len(positions) == 0 {
		return nil, false
	}
	return slices.Clone(ft.entries[positions[0]].Value), true
}

// Remove deletes every field matching id and returns how many were removed.
func (ft *FieldTable) Remove(id string) int {
	if ft.index == nil {
		return 0
	}
	key := normalizeID(id)
	positions, ok := ft.index.Get(key)
	if !ok {
		return 0
	}

	kept := make([]Field, 0, len(ft.entries)-len(positions))
	for _, f := range ft.entries {
		if normalizeID(f.ID) != key {
			kept = append(kept, f)
		}
	}
	ft.Clear()
	for _, f := range kept {
		ft.Add(f)
	}
	return len(positions)
}

// Clear removes all fields.
func (ft *FieldTable) Clear() {
	ft.entries = nil
	ft.index = orderedmap.NewOrderedMap[string, []int]()
}

// Len returns the number of fields, empty ones included.
func (ft *FieldTable) Len() int {
	return len(ft.entries)
}

// NonEmptyLen returns the number of fields with a non-empty value.
func (ft *FieldTable) NonEmptyLen() int {
	n := 0
	for _, f := range ft.entries {
		if !f.IsEmpty() {
			n++
		}
	}
	return n
}

// All returns an iterator over every field in insertion order.
//
// Yielded values share memory with the table and must not be modified, nor
// may the table be modified during iteration.
func (ft *FieldTable) All() iter.Seq[Field] {
	return slices.Values(ft.entries)
}

// Keys returns an iterator over the normalized identifiers, in order of
// first insertion.
func (ft *FieldTable) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		if ft.index == nil {
			return
		}
		for el := ft.index.Front(); el != nil; el = el.Next() {
			if !yield(el.Key) {
				return
			}
		}
	}
}
