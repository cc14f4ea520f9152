package header

import (
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/grammar"
	"github.com/ghettovoice/httphdr/internal/util"
)

// SetAccept sets the Accept header to the list of acceptable media types.
func (h *Headers) SetAccept(mts ...MediaType) error {
	return errtrace.Wrap(h.Set(Accept, MediaTypesString(mts)))
}

// Accept parses the first value of the Accept header.
// An absent header gives an empty list.
func (h *Headers) Accept() ([]MediaType, error) {
	v, ok := h.First(Accept)
	if !ok {
		return []MediaType{}, nil
	}
	mts, err := ParseMediaTypes(v)
	if err != nil {
		return nil, errtrace.Wrap(newParseErr(Accept, v, err))
	}
	return mts, nil
}

// SetAcceptCharset sets the Accept-Charset header to the lower-cased charset names.
func (h *Headers) SetAcceptCharset(css ...Charset) error {
	names := make([]string, len(css))
	for i := range css {
		names[i] = util.LCase(string(css[i]))
	}
	return errtrace.Wrap(h.Set(AcceptCharset, JoinList(names)))
}

// AcceptCharset parses the first value of the Accept-Charset header.
// Quality parameters are ignored and "*" is skipped.
// An absent header gives an empty list, an unknown charset gives [*ParseError].
func (h *Headers) AcceptCharset() ([]Charset, error) {
	v, ok := h.First(AcceptCharset)
	if !ok {
		return []Charset{}, nil
	}

	elems := SplitList(v)
	css := make([]Charset, 0, len(elems))
	for _, e := range elems {
		name, _, _ := strings.Cut(e, ";")
		if name == "*" {
			h.logger().Debug("skip wildcard charset", "header", AcceptCharset, "value", v)
			continue
		}
		cs, err := LookupCharset(name)
		if err != nil {
			return nil, errtrace.Wrap(newParseErr(AcceptCharset, v, err))
		}
		css = append(css, cs)
	}
	return css, nil
}

// SetContentType sets the Content-Type header.
// Media types with a wildcard type or subtype give [ErrInvalidArgument].
func (h *Headers) SetContentType(mt MediaType) error {
	if mt.IsWildcardType() {
		return errtrace.Wrap(newInvalidArgErr("%s cannot contain wildcard type '*'", ContentType))
	}
	if mt.IsWildcardSubtype() {
		return errtrace.Wrap(newInvalidArgErr("%s cannot contain wildcard subtype '*'", ContentType))
	}
	return errtrace.Wrap(h.Set(ContentType, mt.String()))
}

// ContentType parses the first value of the Content-Type header.
// An absent or empty header gives the zero MediaType.
func (h *Headers) ContentType() (MediaType, error) {
	v, ok := h.First(ContentType)
	if !ok || v == "" {
		return MediaType{}, nil
	}
	mt, err := ParseMediaType(v)
	if err != nil {
		return MediaType{}, errtrace.Wrap(newParseErr(ContentType, v, err))
	}
	return mt, nil
}

// SetContentLength sets the Content-Length header.
func (h *Headers) SetContentLength(n int64) error {
	return errtrace.Wrap(h.Set(ContentLength, strconv.FormatInt(n, 10)))
}

// ContentLength parses the first value of the Content-Length header.
// An absent header gives -1.
func (h *Headers) ContentLength() (int64, error) {
	return errtrace.Wrap2(h.int64Value(ContentLength))
}

func (h *Headers) int64Value(name string) (int64, error) {
	v, ok := h.First(name)
	if !ok {
		return -1, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return -1, errtrace.Wrap(newParseErr(name, v, err))
	}
	return n, nil
}

// SetContentDispositionFormData sets the Content-Disposition header for a part
// of a multipart/form-data body.
// The filename is optional and is written as a quoted string.
func (h *Headers) SetContentDispositionFormData(name, filename string) error {
	return errtrace.Wrap(h.SetContentDispositionFormDataCharset(name, filename, ""))
}

// SetContentDispositionFormDataCharset is like [Headers.SetContentDispositionFormData],
// but encodes the filename as an ext-value (see [EncodeExtValue]) if cs is not empty and not US-ASCII.
func (h *Headers) SetContentDispositionFormDataCharset(name, filename string, cs Charset) error {
	if name == "" {
		return errtrace.Wrap(newInvalidArgErr("form-data name is empty"))
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.WriteString("form-data; name=")
	sb.WriteString(grammar.Quote(name))
	if filename != "" {
		if cs != "" && cs.Canonic() != CharsetUSASCII {
			ev, err := EncodeExtValue(filename, cs)
			if err != nil {
				return errtrace.Wrap(err)
			}
			sb.WriteString("; filename*=")
			sb.WriteString(ev)
		} else {
			sb.WriteString("; filename=")
			sb.WriteString(grammar.Quote(filename))
		}
	}
	return errtrace.Wrap(h.Set(ContentDisposition, sb.String()))
}
