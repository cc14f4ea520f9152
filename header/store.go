package header

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/types"
	"github.com/ghettovoice/httphdr/internal/util"
)

// Store is an ordered map from header names to lists of raw header values.
//
// Names are compared case-insensitively, the spelling of the first insertion is kept
// and returned by [Store.Names] and [Store.All].
// Replacing the values of an existing name keeps its spelling and position,
// while [Store.Remove] forgets both.
//
// The zero value is an empty mutable store ready to use.
// A mutable store is not safe for concurrent use, a read-only store is safe
// for any number of concurrent readers.
type Store struct {
	m  types.OrderedMap[[]string]
	ro bool
}

// NewStore creates an empty mutable store.
func NewStore() *Store {
	return &Store{m: *types.NewOrderedMap[[]string](8)}
}

func (s *Store) checkMutable(op string) error {
	if s == nil {
		return errtrace.Wrap(newInvalidArgErr("%s: nil store", op))
	}
	if s.ro {
		return errtrace.Wrap(newUnsupportedOpErr("%s: read-only store", op))
	}
	return nil
}

// Values returns a copy of the values stored under name.
func (s *Store) Values(name string) ([]string, bool) {
	if s == nil {
		return nil, false
	}
	vals, ok := s.m.Get(name)
	if !ok {
		return nil, false
	}
	return slices.Clone(vals), true
}

// First returns the first value stored under name.
// It returns false if the name is absent or holds an empty list.
func (s *Store) First(name string) (string, bool) {
	if s == nil {
		return "", false
	}
	vals, _ := s.m.Get(name)
	if len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// Add appends value to the list stored under name, the list is created if absent.
func (s *Store) Add(name, value string) error {
	if err := s.checkMutable("add"); err != nil {
		return errtrace.Wrap(err)
	}
	vals, _ := s.m.Get(name)
	s.m.Set(name, append(vals, value))
	return nil
}

// Set replaces the list stored under name with a single value.
func (s *Store) Set(name, value string) error {
	if err := s.checkMutable("set"); err != nil {
		return errtrace.Wrap(err)
	}
	s.m.Set(name, []string{value})
	return nil
}

// SetAll calls [Store.Set] for every pair of vals in order.
func (s *Store) SetAll(vals *OrderedMap[string]) error {
	if err := s.checkMutable("set all"); err != nil {
		return errtrace.Wrap(err)
	}
	for name, val := range vals.All() {
		s.m.Set(name, []string{val})
	}
	return nil
}

// Put stores a copy of vals under name and returns the previous list.
// Unlike [Store.Set] and [Store.Add], it can store an empty list.
func (s *Store) Put(name string, vals []string) ([]string, error) {
	if err := s.checkMutable("put"); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if vals == nil {
		vals = []string{}
	}
	prev, _ := s.m.Set(name, slices.Clone(vals))
	return prev, nil
}

// Remove deletes name and returns its list.
func (s *Store) Remove(name string) ([]string, error) {
	if err := s.checkMutable("remove"); err != nil {
		return nil, errtrace.Wrap(err)
	}
	prev, _ := s.m.Del(name)
	return prev, nil
}

// PutAll copies every entry of other in its order, replacing lists of existing names.
func (s *Store) PutAll(other *Store) error {
	if err := s.checkMutable("put all"); err != nil {
		return errtrace.Wrap(err)
	}
	if other == nil || other == s {
		return nil
	}
	for name, vals := range other.m.All() {
		s.m.Set(name, slices.Clone(vals))
	}
	return nil
}

// Clear deletes all names.
func (s *Store) Clear() error {
	if err := s.checkMutable("clear"); err != nil {
		return errtrace.Wrap(err)
	}
	s.m.Clear()
	return nil
}

// Len returns the number of distinct names.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return s.m.Len()
}

func (s *Store) IsEmpty() bool { return s.Len() == 0 }

// Has checks whether name is present, even with an empty list.
func (s *Store) Has(name string) bool {
	if s == nil {
		return false
	}
	return s.m.Has(name)
}

// HasValues checks whether some name holds exactly vals.
func (s *Store) HasValues(vals []string) bool {
	if s == nil {
		return false
	}
	for _, v := range s.m.All() {
		if slices.Equal(v, vals) {
			return true
		}
	}
	return false
}

// Names returns the header names in insertion order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	return s.m.Keys()
}

// ValueLists returns copies of the value lists in insertion order of their names.
func (s *Store) ValueLists() [][]string {
	if s == nil {
		return nil
	}
	lists := make([][]string, 0, s.m.Len())
	for _, v := range s.m.All() {
		lists = append(lists, slices.Clone(v))
	}
	return lists
}

// All iterates over names and copies of their value lists in insertion order.
// The store must not be modified during iteration.
func (s *Store) All() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		if s == nil {
			return
		}
		for name, vals := range s.m.All() {
			if !yield(name, slices.Clone(vals)) {
				return
			}
		}
	}
}

// ToSingleValueMap returns the first value of every name, keeping the order of names.
// Names with an empty list are skipped.
func (s *Store) ToSingleValueMap() *OrderedMap[string] {
	m := types.NewOrderedMap[string](s.Len())
	if s == nil {
		return m
	}
	for name, vals := range s.m.All() {
		if len(vals) == 0 {
			continue
		}
		m.Set(name, vals[0])
	}
	return m
}

// ReadOnly returns a read-only deep copy of the store.
// Changes of s made after the call are not visible through the copy.
// If s is already read-only, it is returned as is.
func (s *Store) ReadOnly() *Store {
	if s == nil {
		return &Store{ro: true}
	}
	if s.ro {
		return s
	}
	return &Store{m: *s.m.Clone(slices.Clone), ro: true}
}

func (s *Store) IsReadOnly() bool { return s != nil && s.ro }

// Clone returns a mutable deep copy of the store.
func (s *Store) Clone() *Store {
	if s == nil {
		return nil
	}
	return &Store{m: *s.m.Clone(slices.Clone)}
}

// Equal reports whether val is a store with the same names and value lists.
// Names are compared case-insensitively, the order of names is ignored,
// value lists are compared element-wise.
func (s *Store) Equal(val any) bool {
	var other *Store
	switch v := val.(type) {
	case *Store:
		other = v
	case Store:
		other = &v
	case *Headers:
		if v == nil {
			return false
		}
		other = v.Store
	default:
		return false
	}

	if s == other {
		return true
	}
	if s == nil || other == nil {
		return false
	}
	if s.m.Len() != other.m.Len() {
		return false
	}
	for name, vals := range s.m.All() {
		ovals, ok := other.m.Get(name)
		if !ok || !slices.Equal(vals, ovals) {
			return false
		}
	}
	return true
}

func (s *Store) String() string {
	if s == nil {
		return "<nil>"
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.WriteString("map[")
	i := 0
	for name, vals := range s.m.All() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(sb, "%s:%v", name, vals)
		i++
	}
	sb.WriteByte(']')
	return sb.String()
}

func (s *Store) LogValue() slog.Value {
	if s == nil {
		return slog.Value{}
	}
	attrs := make([]slog.Attr, 0, s.m.Len())
	for name, vals := range s.m.All() {
		attrs = append(attrs, slog.String(name, strings.Join(vals, ", ")))
	}
	return slog.GroupValue(attrs...)
}

// MarshalJSON encodes the store as a JSON object of string arrays, keeping the order of names.
func (s *Store) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for name, vals := range s.m.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(name)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		if vals == nil {
			vals = []string{}
		}
		v, err := json.Marshal(vals)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		i++
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the content of the store with a JSON object of string arrays.
// The order of names follows the input.
func (s *Store) UnmarshalJSON(data []byte) error {
	if err := s.checkMutable("unmarshal"); err != nil {
		return errtrace.Wrap(err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return errtrace.Wrap(err)
	}
	if tok == nil {
		s.m.Clear()
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errtrace.Wrap(fmt.Errorf("unexpected JSON token %v: want object", tok))
	}

	m := types.NewOrderedMap[[]string](8)
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return errtrace.Wrap(err)
		}
		name, _ := tok.(string)

		var vals []string
		if err = dec.Decode(&vals); err != nil {
			return errtrace.Wrap(err)
		}
		if vals == nil {
			vals = []string{}
		}
		if prev, ok := m.Get(name); ok {
			vals = append(prev, vals...)
		}
		m.Set(name, vals)
	}
	if _, err = dec.Token(); err != nil {
		return errtrace.Wrap(err)
	}

	s.m = *m
	return nil
}
