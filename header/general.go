package header

import (
	"net/url"
	"unicode/utf8"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/util"
)

// SetAllow sets the Allow header to the comma-separated method names.
func (h *Headers) SetAllow(methods ...RequestMethod) error {
	return errtrace.Wrap(h.Set(Allow, joinMethods(methods)))
}

// Allow resolves the methods listed in the first value of the Allow header.
// The result has no duplicates and follows the order of [KnownMethods].
// Unknown methods are dropped, an absent or empty header gives an empty list.
func (h *Headers) Allow() []RequestMethod {
	v, _ := h.First(Allow)
	if v == "" {
		return []RequestMethod{}
	}

	known := KnownMethods()
	seen := make([]bool, len(known))
	for _, m := range h.resolveMethods(Allow, v) {
		seen[m.Ordinal()] = true
	}

	methods := make([]RequestMethod, 0, len(known))
	for i, m := range known {
		if seen[i] {
			methods = append(methods, m)
		}
	}
	return methods
}

func (h *Headers) SetConnection(opts ...string) error {
	return errtrace.Wrap(h.Set(Connection, JoinList(opts)))
}

func (h *Headers) Connection() []string { return h.ListValues(Connection) }

func (h *Headers) SetUpgrade(protos string) error {
	return errtrace.Wrap(h.Set(Upgrade, protos))
}

func (h *Headers) Upgrade() (string, bool) { return h.First(Upgrade) }

// SetLocation sets the Location header to the ASCII string form of u.
// Octets outside US-ASCII left raw by [url.URL.String], e.g. in the query, are percent-encoded.
func (h *Headers) SetLocation(u *url.URL) error {
	if u == nil {
		return errtrace.Wrap(newInvalidArgErr("nil %s URL", Location))
	}
	return errtrace.Wrap(h.Set(Location, asciiURL(u)))
}

func asciiURL(u *url.URL) string {
	s := u.String()
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	for i := 0; i < len(s); i++ {
		if s[i] < utf8.RuneSelf {
			sb.WriteByte(s[i])
			continue
		}
		sb.WriteString(pctEncoding[s[i]])
	}
	return sb.String()
}

// Location parses the first value of the Location header.
// An absent header gives nil.
func (h *Headers) Location() (*url.URL, error) {
	v, ok := h.First(Location)
	if !ok {
		return nil, nil
	}
	u, err := url.Parse(v)
	if err != nil {
		return nil, errtrace.Wrap(newParseErr(Location, v, err))
	}
	return u, nil
}

// SetRange sets the Range header. At least one valid range is required.
func (h *Headers) SetRange(rs ...ByteRange) error {
	if len(rs) == 0 {
		return errtrace.Wrap(newInvalidArgErr("empty byte range list"))
	}
	for _, r := range rs {
		if !r.IsValid() {
			return errtrace.Wrap(newInvalidArgErr("invalid byte range %q", r.String()))
		}
	}
	return errtrace.Wrap(h.Set(Range, ByteRangesString(rs)))
}

// Range parses the first value of the Range header.
// An absent header gives no ranges.
func (h *Headers) Range() ([]ByteRange, error) {
	v, ok := h.First(Range)
	if !ok {
		return nil, nil
	}
	rs, err := ParseByteRanges(v)
	if err != nil {
		return nil, errtrace.Wrap(newParseErr(Range, v, err))
	}
	return rs, nil
}
