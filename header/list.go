package header

import (
	"strings"

	"github.com/ghettovoice/httphdr/internal/util"
)

// SplitList splits a comma-separated header value into trimmed non-empty elements.
func SplitList(value string) []string {
	var elems []string
	for e := range strings.SplitSeq(value, ",") {
		if e = util.TrimSP(e); e != "" {
			elems = append(elems, e)
		}
	}
	return elems
}

// JoinList joins values with ", ".
func JoinList(values []string) string { return strings.Join(values, ", ") }

// splitQuoted is like [SplitList], but commas inside quoted strings do not split.
func splitQuoted(value string) []string {
	var (
		elems  []string
		start  int
		quoted bool
	)
	push := func(e string) {
		if e = util.TrimSP(e); e != "" {
			elems = append(elems, e)
		}
	}
	for i := 0; i < len(value); i++ {
		switch c := value[i]; {
		case quoted && c == '\\':
			i++
		case c == '"':
			quoted = !quoted
		case !quoted && c == ',':
			push(value[start:i])
			start = i + 1
		}
	}
	push(value[start:])
	return elems
}

// ListValues splits every value of the named header with [SplitList]
// and returns all elements in order.
func (h *Headers) ListValues(name string) []string {
	vals, ok := h.Values(name)
	if !ok {
		return []string{}
	}
	elems := make([]string, 0, len(vals))
	for _, v := range vals {
		elems = append(elems, SplitList(v)...)
	}
	return elems
}

// FieldValues returns all values of the named header joined with ", ".
func (h *Headers) FieldValues(name string) (string, bool) {
	vals, ok := h.Values(name)
	if !ok {
		return "", false
	}
	return JoinList(vals), true
}

func joinComma(values []string) string { return strings.Join(values, ",") }
