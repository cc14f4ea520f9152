package header

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"braces.dev/errtrace"
	"golang.org/x/text/encoding/charmap"
)

var pctEncoding [256]string

func init() {
	for i := 0; i <= 0xFF; i++ {
		b := byte(i)
		// attr-char (RFC 5987 Section 3.2.1)
		isAttrChar := (b >= '0' && b <= '9') ||
			(b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') ||
			strings.ContainsRune("!#$&+-.^_`|~", rune(b))
		if isAttrChar {
			pctEncoding[b] = string([]byte{b})
		} else {
			pctEncoding[b] = fmt.Sprintf("%%%02X", b)
		}
	}
}

// EncodeExtValue encodes input as an ext-value (RFC 5987, RFC 8187) without a language tag:
//
//	UTF-8''%E2%82%AC%20rates
//
// US-ASCII input is returned unchanged. UTF-8 and ISO-8859-1 are percent-encoded,
// runes that ISO-8859-1 cannot represent are replaced with '?'.
// Other charsets give [ErrInvalidArgument].
func EncodeExtValue(input string, cs Charset) (string, error) {
	var raw []byte
	switch cs = cs.Canonic(); cs {
	case CharsetUSASCII:
		return input, nil
	case CharsetUTF8:
		raw = []byte(input)
	case CharsetISO88591:
		raw = make([]byte, 0, utf8.RuneCountInString(input))
		for _, r := range input {
			b, ok := charmap.ISO8859_1.EncodeRune(r)
			if !ok {
				b = '?'
			}
			raw = append(raw, b)
		}
	default:
		return "", errtrace.Wrap(newInvalidArgErr("ext-value charset %q: want UTF-8 or ISO-8859-1", string(cs)))
	}

	var sb strings.Builder
	sb.Grow(len(cs) + 2 + 3*len(raw))
	sb.WriteString(string(cs))
	sb.WriteString("''")
	for _, b := range raw {
		sb.WriteString(pctEncoding[b])
	}
	return sb.String(), nil
}
