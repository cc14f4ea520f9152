package types

import (
	"iter"
	"slices"

	"github.com/ghettovoice/httphdr/internal/util"
)

// OrderedMap maps case-insensitive string keys to values of type V,
// preserving the insertion order of distinct keys.
//
// Keys are folded with [strings.ToLower] for lookup, but the spelling of the
// first insertion is retained and returned by Keys and All.
// Replacing the value of an existing key keeps both its spelling and its position.
// Deleting a key forgets its spelling, so the next insertion re-seeds it at the end.
//
// The zero value is an empty map ready to use. A nil *OrderedMap behaves like an empty
// read-only map.
type OrderedMap[V any] struct {
	entries []orderedEntry[V]
	index   map[string]int
}

type orderedEntry[V any] struct {
	key string
	val V
}

// NewOrderedMap creates an empty map with room for size keys.
func NewOrderedMap[V any](size int) *OrderedMap[V] {
	return &OrderedMap[V]{
		entries: make([]orderedEntry[V], 0, size),
		index:   make(map[string]int, size),
	}
}

func foldKey(key string) string { return util.LCase(key) }

// Len returns the number of keys.
func (m *OrderedMap[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Get returns the value associated with key.
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	i, ok := m.index[foldKey(key)]
	if !ok {
		var zero V
		return zero, false
	}
	return m.entries[i].val, true
}

// Key returns the stored spelling of key.
func (m *OrderedMap[V]) Key(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	i, ok := m.index[foldKey(key)]
	if !ok {
		return "", false
	}
	return m.entries[i].key, true
}

// Has checks whether key is in the map.
func (m *OrderedMap[V]) Has(key string) bool {
	if m == nil {
		return false
	}
	_, ok := m.index[foldKey(key)]
	return ok
}

// Set associates val with key and returns the previous value if there was one.
func (m *OrderedMap[V]) Set(key string, val V) (V, bool) {
	fk := foldKey(key)
	if i, ok := m.index[fk]; ok {
		old := m.entries[i].val
		m.entries[i].val = val
		return old, true
	}

	if m.index == nil {
		m.index = make(map[string]int)
	}
	m.index[fk] = len(m.entries)
	m.entries = append(m.entries, orderedEntry[V]{key: key, val: val})

	var zero V
	return zero, false
}

// Del deletes key and returns its value if it was present.
func (m *OrderedMap[V]) Del(key string) (V, bool) {
	var zero V
	if m == nil {
		return zero, false
	}

	fk := foldKey(key)
	i, ok := m.index[fk]
	if !ok {
		return zero, false
	}

	old := m.entries[i].val
	delete(m.index, fk)
	m.entries = slices.Delete(m.entries, i, i+1)
	for j := i; j < len(m.entries); j++ {
		m.index[foldKey(m.entries[j].key)] = j
	}
	return old, true
}

// Clear deletes all keys.
func (m *OrderedMap[V]) Clear() {
	if m == nil {
		return
	}
	clear(m.entries)
	m.entries = m.entries[:0]
	clear(m.index)
}

// Keys returns the keys in insertion order, in their stored spelling.
func (m *OrderedMap[V]) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.entries))
	for i := range m.entries {
		keys[i] = m.entries[i].key
	}
	return keys
}

// All iterates over the key-value pairs in insertion order.
// The map must not be modified during iteration.
func (m *OrderedMap[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if m == nil {
			return
		}
		for i := range m.entries {
			if !yield(m.entries[i].key, m.entries[i].val) {
				return
			}
		}
	}
}

// Clone returns a copy of the map.
// If cloneVal is not nil, it is used to copy each value.
func (m *OrderedMap[V]) Clone(cloneVal func(V) V) *OrderedMap[V] {
	if m == nil {
		return nil
	}

	m2 := NewOrderedMap[V](len(m.entries))
	for i := range m.entries {
		v := m.entries[i].val
		if cloneVal != nil {
			v = cloneVal(v)
		}
		m2.entries = append(m2.entries, orderedEntry[V]{key: m.entries[i].key, val: v})
		m2.index[foldKey(m.entries[i].key)] = i
	}
	return m2
}
