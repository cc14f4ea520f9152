package header

import (
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/util"
)

func (h *Headers) SetAccessControlAllowCredentials(allow bool) error {
	return errtrace.Wrap(h.Set(AccessControlAllowCredentials, strconv.FormatBool(allow)))
}

// AccessControlAllowCredentials reports whether the first value of the
// Access-Control-Allow-Credentials header is "true" in any case.
func (h *Headers) AccessControlAllowCredentials() bool {
	v, _ := h.First(AccessControlAllowCredentials)
	return util.EqFold(v, "true")
}

func (h *Headers) SetAccessControlAllowHeaders(names ...string) error {
	return errtrace.Wrap(h.Set(AccessControlAllowHeaders, JoinList(names)))
}

func (h *Headers) AccessControlAllowHeaders() []string {
	return h.ListValues(AccessControlAllowHeaders)
}

func (h *Headers) SetAccessControlAllowMethods(methods ...RequestMethod) error {
	return errtrace.Wrap(h.Set(AccessControlAllowMethods, joinMethods(methods)))
}

// AccessControlAllowMethods resolves the methods listed in the first value of the
// Access-Control-Allow-Methods header. Unknown methods are dropped.
func (h *Headers) AccessControlAllowMethods() []RequestMethod {
	v, ok := h.First(AccessControlAllowMethods)
	if !ok {
		return []RequestMethod{}
	}
	return h.resolveMethods(AccessControlAllowMethods, v)
}

func (h *Headers) resolveMethods(name, value string) []RequestMethod {
	elems := SplitList(value)
	methods := make([]RequestMethod, 0, len(elems))
	for _, e := range elems {
		m, ok := ResolveMethod(e)
		if !ok {
			h.logger().Debug("drop unknown request method", "header", name, "method", e)
			continue
		}
		methods = append(methods, m)
	}
	return methods
}

func (h *Headers) SetAccessControlAllowOrigin(origin string) error {
	return errtrace.Wrap(h.Set(AccessControlAllowOrigin, origin))
}

// AccessControlAllowOrigin returns all values of the Access-Control-Allow-Origin header
// joined with ", ".
func (h *Headers) AccessControlAllowOrigin() (string, bool) {
	return h.FieldValues(AccessControlAllowOrigin)
}

func (h *Headers) SetAccessControlExposeHeaders(names ...string) error {
	return errtrace.Wrap(h.Set(AccessControlExposeHeaders, JoinList(names)))
}

func (h *Headers) AccessControlExposeHeaders() []string {
	return h.ListValues(AccessControlExposeHeaders)
}

func (h *Headers) SetAccessControlMaxAge(seconds int64) error {
	return errtrace.Wrap(h.Set(AccessControlMaxAge, strconv.FormatInt(seconds, 10)))
}

// AccessControlMaxAge parses the first value of the Access-Control-Max-Age header.
// An absent header gives -1.
func (h *Headers) AccessControlMaxAge() (int64, error) {
	return errtrace.Wrap2(h.int64Value(AccessControlMaxAge))
}

func (h *Headers) SetAccessControlRequestHeaders(names ...string) error {
	return errtrace.Wrap(h.Set(AccessControlRequestHeaders, JoinList(names)))
}

func (h *Headers) AccessControlRequestHeaders() []string {
	return h.ListValues(AccessControlRequestHeaders)
}

func (h *Headers) SetAccessControlRequestMethod(method RequestMethod) error {
	return errtrace.Wrap(h.Set(AccessControlRequestMethod, string(method)))
}

// AccessControlRequestMethod resolves the first value of the Access-Control-Request-Method header.
func (h *Headers) AccessControlRequestMethod() (RequestMethod, bool) {
	v, ok := h.First(AccessControlRequestMethod)
	if !ok {
		return "", false
	}
	return ResolveMethod(v)
}

func (h *Headers) SetOrigin(origin string) error {
	return errtrace.Wrap(h.Set(Origin, origin))
}

func (h *Headers) Origin() (string, bool) { return h.First(Origin) }
