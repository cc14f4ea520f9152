package types

import (
	"slices"

	"github.com/ghettovoice/httphdr/internal/grammar"
)

// HTTP request methods known to the typed header accessors.
// The declaration order is the order used by method sets.
const (
	RequestMethodGet     RequestMethod = "GET"
	RequestMethodHead    RequestMethod = "HEAD"
	RequestMethodPost    RequestMethod = "POST"
	RequestMethodPut     RequestMethod = "PUT"
	RequestMethodPatch   RequestMethod = "PATCH"
	RequestMethodDelete  RequestMethod = "DELETE"
	RequestMethodOptions RequestMethod = "OPTIONS"
	RequestMethodTrace   RequestMethod = "TRACE"
)

var knownMethods = []RequestMethod{
	RequestMethodGet,
	RequestMethodHead,
	RequestMethodPost,
	RequestMethodPut,
	RequestMethodPatch,
	RequestMethodDelete,
	RequestMethodOptions,
	RequestMethodTrace,
}

// RequestMethod is an HTTP request method name.
type RequestMethod string

// KnownRequestMethods returns all known methods in declaration order.
func KnownRequestMethods() []RequestMethod { return slices.Clone(knownMethods) }

// ResolveRequestMethod resolves name to one of the known methods.
// The match is exact: "get" does not resolve to GET.
func ResolveRequestMethod(name string) (RequestMethod, bool) {
	m := RequestMethod(name)
	if !m.IsKnown() {
		return "", false
	}
	return m, true
}

// IsKnown checks whether m is one of the known methods.
func (m RequestMethod) IsKnown() bool { return slices.Contains(knownMethods, m) }

// Ordinal returns the position of m in the declaration order, or -1 for unknown methods.
func (m RequestMethod) Ordinal() int { return slices.Index(knownMethods, m) }

func (m RequestMethod) IsValid() bool { return grammar.IsToken(m) }

func (m RequestMethod) String() string { return string(m) }

func (m RequestMethod) Equal(val any) bool {
	var other RequestMethod
	switch v := val.(type) {
	case RequestMethod:
		other = v
	case *RequestMethod:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return m == other
}
