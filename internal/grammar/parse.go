package grammar

import (
	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/httphdr/internal/errorutil"
)

func newMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}

func parse[T ~string | ~[]byte](op abnf.Operator, s T) (*abnf.Node, error) {
	if len(s) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := op([]byte(s), 0, ns); err != nil {
		return nil, errtrace.Wrap(newMalformedInputErr(err))
	}

	n := ns.Best()
	if nl, il := n.Len(), len(s); nl < il {
		return nil, errtrace.Wrap(newMalformedInputErr("node length %d < input length %d", nl, il))
	}
	return n, nil
}

// ParseMediaType parses a media-type with optional parameters (RFC 9110 Section 8.3.1).
// The returned node has "type", "subtype" and "parameter" descendants,
// each parameter has "parameter-name" and "parameter-value" children.
func ParseMediaType[T ~string | ~[]byte](s T) (*abnf.Node, error) {
	return errtrace.Wrap2(parse(mediaType, s))
}

// ParseByteRanges parses a Range header value with the "bytes" unit (RFC 9110 Section 14.2).
// The returned node has one "range-spec" descendant per range, each of them holds
// either "first-pos" with optional "last-pos" or "suffix-length".
func ParseByteRanges[T ~string | ~[]byte](s T) (*abnf.Node, error) {
	return errtrace.Wrap2(parse(rangesSpecifier, s))
}

// EntityTags scans s for "*" and entity-tag elements and returns their raw text
// in order of appearance.
// Bytes that do not start an element, such as separators or garbage, are skipped.
func EntityTags(s string) []string {
	var (
		in   = []byte(s)
		tags []string
	)
	for pos := 0; pos < len(in); {
		ns := abnf.NewNodes()
		if err := etagElem(in, uint(pos), ns); err == nil {
			if n := ns.Best(); n != nil && n.Len() > 0 {
				tags = append(tags, s[pos:pos+n.Len()])
				pos += n.Len()
				ns.Free()
				continue
			}
		}
		ns.Free()
		pos++
	}
	return tags
}
