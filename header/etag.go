package header

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/grammar"
)

// ETagValues returns the entity tags and "*" wildcards found in the values of the named header.
// Each value is scanned left to right, text between tags is ignored.
// If a value gives no tags while no tags were found in the previous values,
// [*ParseError] is returned.
func (h *Headers) ETagValues(name string) ([]string, error) {
	vals, ok := h.Values(name)
	if !ok {
		return []string{}, nil
	}

	tags := make([]string, 0, len(vals))
	for _, v := range vals {
		tags = append(tags, grammar.EntityTags(v)...)
		if len(tags) == 0 {
			return nil, errtrace.Wrap(newParseErr(name, v, grammar.ErrMalformedInput))
		}
	}
	return tags, nil
}

func isETag(s string) bool {
	if len(s) > 1 && s[0] == 'W' && s[1] == '/' {
		s = s[2:]
	} else if len(s) == 0 || s[0] != '"' {
		return false
	}
	return len(s) > 0 && s[len(s)-1] == '"'
}
