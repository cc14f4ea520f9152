package header

import (
	"braces.dev/errtrace"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/ghettovoice/httphdr/internal/util"
)

// Charset is a character set identified by its preferred MIME name.
type Charset string

// Character sets every implementation must support.
const (
	CharsetUSASCII  Charset = "US-ASCII"
	CharsetISO88591 Charset = "ISO-8859-1"
	CharsetUTF8     Charset = "UTF-8"
)

// LookupCharset resolves a charset name or alias from the IANA registry
// to its preferred MIME name, e.g. "latin1" resolves to [CharsetISO88591].
// Names that are unknown or have no encoding implementation give [ErrInvalidArgument].
func LookupCharset(name string) (Charset, error) {
	name = util.TrimSP(name)
	enc, err := ianaindex.MIME.Encoding(name)
	if err != nil {
		return "", errtrace.Wrap(newInvalidArgErr(err))
	}
	if enc == nil {
		return "", errtrace.Wrap(newInvalidArgErr("unsupported charset %q", name))
	}
	canon, err := ianaindex.MIME.Name(enc)
	if err != nil {
		return "", errtrace.Wrap(newInvalidArgErr(err))
	}
	return Charset(canon), nil
}

// Encoding returns the encoding implementation of the charset.
func (cs Charset) Encoding() (encoding.Encoding, error) {
	enc, err := ianaindex.MIME.Encoding(string(cs))
	if err != nil {
		return nil, errtrace.Wrap(newInvalidArgErr(err))
	}
	if enc == nil {
		return nil, errtrace.Wrap(newInvalidArgErr("unsupported charset %q", string(cs)))
	}
	return enc, nil
}

// Canonic returns the preferred MIME name of the charset,
// or the charset itself if it cannot be resolved.
func (cs Charset) Canonic() Charset {
	if c, err := LookupCharset(string(cs)); err == nil {
		return c
	}
	return cs
}

func (cs Charset) String() string { return string(cs) }

func (cs Charset) Equal(val any) bool {
	var other Charset
	switch v := val.(type) {
	case Charset:
		other = v
	case *Charset:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(cs.Canonic(), other.Canonic())
}
