package header

import "github.com/ghettovoice/httphdr/internal/types"

// RequestMethod represents an HTTP request method.
type RequestMethod = types.RequestMethod

// Known request methods.
const (
	MethodGet     = types.RequestMethodGet
	MethodHead    = types.RequestMethodHead
	MethodPost    = types.RequestMethodPost
	MethodPut     = types.RequestMethodPut
	MethodPatch   = types.RequestMethodPatch
	MethodDelete  = types.RequestMethodDelete
	MethodOptions = types.RequestMethodOptions
	MethodTrace   = types.RequestMethodTrace
)

// ResolveMethod resolves name to one of the known methods.
// The name is case-sensitive, "get" does not resolve.
func ResolveMethod(name string) (RequestMethod, bool) { return types.ResolveRequestMethod(name) }

// KnownMethods returns all known methods.
func KnownMethods() []RequestMethod { return types.KnownRequestMethods() }

func joinMethods(methods []RequestMethod) string {
	names := make([]string, len(methods))
	for i := range methods {
		names[i] = string(methods[i])
	}
	return joinComma(names)
}
