package header

import (
	"strconv"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/httphdr/internal/grammar"
	"github.com/ghettovoice/httphdr/internal/util"
)

const byteRangesPrefix = "bytes="

// ByteRange is a range of the Range header (RFC 9110 Section 14.1.2).
//
// A range with First >= 0 spans bytes First through Last inclusive, a negative Last
// means "to the end". A range with negative First is a suffix range of the last Last bytes.
type ByteRange struct {
	First int64
	Last  int64
}

// Bytes returns the range of bytes first through last inclusive.
func Bytes(first, last int64) ByteRange { return ByteRange{First: first, Last: last} }

// BytesFrom returns the range of bytes from first to the end.
func BytesFrom(first int64) ByteRange { return ByteRange{First: first, Last: -1} }

// LastBytes returns the suffix range of the last n bytes.
func LastBytes(n int64) ByteRange { return ByteRange{First: -1, Last: n} }

// IsSuffix checks whether r is a suffix range.
func (r ByteRange) IsSuffix() bool { return r.First < 0 }

func (r ByteRange) IsValid() bool {
	switch {
	case r.IsSuffix():
		return r.Last >= 0
	case r.Last < 0:
		return true
	default:
		return r.Last >= r.First
	}
}

func (r ByteRange) String() string {
	switch {
	case r.IsSuffix():
		return "-" + strconv.FormatInt(r.Last, 10)
	case r.Last < 0:
		return strconv.FormatInt(r.First, 10) + "-"
	default:
		return strconv.FormatInt(r.First, 10) + "-" + strconv.FormatInt(r.Last, 10)
	}
}

func (r ByteRange) Equal(val any) bool {
	var other ByteRange
	switch v := val.(type) {
	case ByteRange:
		other = v
	case *ByteRange:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return r == other
}

// ParseByteRanges parses a Range header value, for example "bytes=0-499, -500".
// An empty string gives no ranges.
func ParseByteRanges(s string) ([]ByteRange, error) {
	s = util.TrimSP(s)
	if s == "" {
		return nil, nil
	}
	node, err := grammar.ParseByteRanges(s)
	if err != nil {
		return nil, errtrace.Wrap(newMalformedValueErr(err))
	}

	specs := node.GetNodes("range-spec")
	rs := make([]ByteRange, 0, len(specs))
	for _, spec := range specs {
		r, err := buildFromRangeSpecNode(spec)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		rs = append(rs, r)
	}
	return rs, nil
}

func buildFromRangeSpecNode(node *abnf.Node) (ByteRange, error) {
	if n, ok := node.GetNode("suffix-length"); ok {
		l, err := parseBytePos(n.String())
		if err != nil {
			return ByteRange{}, errtrace.Wrap(err)
		}
		return LastBytes(l), nil
	}

	f, err := parseBytePos(grammar.MustGetNode(node, "first-pos").String())
	if err != nil {
		return ByteRange{}, errtrace.Wrap(err)
	}
	n, ok := node.GetNode("last-pos")
	if !ok {
		return BytesFrom(f), nil
	}
	l, err := parseBytePos(n.String())
	if err != nil {
		return ByteRange{}, errtrace.Wrap(err)
	}
	if l < f {
		return ByteRange{}, errtrace.Wrap(newMalformedValueErr("byte range %q ends before it starts", node.String()))
	}
	return Bytes(f, l), nil
}

func parseBytePos(s string) (int64, error) {
	n, err := strconv.ParseUint(s, 10, 63)
	if err != nil {
		return 0, errtrace.Wrap(newMalformedValueErr(err))
	}
	return int64(n), nil
}

// ByteRangesString renders ranges as a Range header value.
func ByteRangesString(rs []ByteRange) string {
	return byteRangesPrefix + joinValues(rs, ", ")
}
