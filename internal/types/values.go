package types

import (
	"slices"

	"github.com/ghettovoice/httphdr/internal/util"
)

// Values maps a parameter name to a list of values.
// Names are case-insensitive and stored lower-cased.
// It is used to store parameters of media types and other parameterized header values.
type Values map[string][]string

// Get returns values associated with the given name.
func (vals Values) Get(name string) []string { return vals[util.LCase(name)] }

// First returns the first value associated with the given name.
func (vals Values) First(name string) (string, bool) {
	v := vals[util.LCase(name)]
	if len(v) == 0 {
		return "", false
	}
	return v[0], true
}

// Last returns the last value associated with the given name.
func (vals Values) Last(name string) (string, bool) {
	v := vals[util.LCase(name)]
	if len(v) == 0 {
		return "", false
	}
	return v[len(v)-1], true
}

// Set sets the name to value. It replaces any existing values.
func (vals Values) Set(name, value string) Values {
	vals[util.LCase(name)] = []string{value}
	return vals
}

// Append adds the value to the list associated with the name.
func (vals Values) Append(name, value string) Values {
	name = util.LCase(name)
	vals[name] = append(vals[name], value)
	return vals
}

// Del deletes the values associated with the name.
func (vals Values) Del(name string) Values {
	delete(vals, util.LCase(name))
	return vals
}

// Has checks whether a given name is in the map.
func (vals Values) Has(name string) bool {
	_, ok := vals[util.LCase(name)]
	return ok
}

// Names returns the parameter names in lexical order.
func (vals Values) Names() []string {
	names := make([]string, 0, len(vals))
	for k := range vals {
		names = append(names, util.LCase(k))
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// Clone returns a copy of the map.
func (vals Values) Clone() Values {
	var vals2 Values
	for k, vs := range vals {
		if vals2 == nil {
			vals2 = make(Values, len(vals))
		}
		vals2[k] = slices.Clone(vs)
	}
	return vals2
}
