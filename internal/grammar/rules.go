package grammar

import "github.com/ghettovoice/abnf"

func char(key string, c byte) abnf.Operator { return abnf.Range(key, []byte{c}, []byte{c}) }

func chars(key string, lo, hi byte) abnf.Operator { return abnf.Range(key, []byte{lo}, []byte{hi}) }

func digits(key string) abnf.Operator { return abnf.Repeat1Inf(key, chars("DIGIT", '0', '9')) }

// RFC 9110 Section 5.6.
var (
	sp     = char("SP", ' ')
	htab   = char("HTAB", '\t')
	dquote = char("DQUOTE", '"')
	ows    = abnf.Repeat0Inf("OWS", abnf.AltFirst("WSP", sp, htab))

	tchar = abnf.AltFirst(
		"tchar",
		char("%x21", '!'),
		chars("%x23-27", '#', '\''),
		chars("%x2A-2B", '*', '+'),
		chars("%x2D-2E", '-', '.'),
		chars("DIGIT", '0', '9'),
		chars("%x41-5A", 'A', 'Z'),
		chars("%x5E-7A", '^', 'z'),
		char("%x7C", '|'),
		char("%x7E", '~'),
	)
	token = abnf.Repeat1Inf("token", tchar)

	obsText = chars("obs-text", 0x80, 0xFF)
	qdtext  = abnf.AltFirst(
		"qdtext",
		htab,
		chars("%x20-21", ' ', '!'),
		chars("%x23-5B", '#', '['),
		chars("%x5D-7E", ']', '~'),
		obsText,
	)
	quotedPair = abnf.Concat(
		"quoted-pair",
		char("\\", '\\'),
		abnf.AltFirst("quoted-char", htab, chars("%x20-7E", ' ', '~'), obsText),
	)
	quotedString = abnf.Concat(
		"quoted-string",
		dquote,
		abnf.Repeat0Inf("*( qdtext / quoted-pair )", abnf.AltFirst("qchar", qdtext, quotedPair)),
		dquote,
	)
)

// RFC 9110 Section 8.3.1.
var (
	parameter = abnf.Concat(
		"parameter",
		abnf.Repeat1Inf("parameter-name", tchar),
		char("=", '='),
		abnf.AltFirst("parameter-value", token, quotedString),
	)
	mediaType = abnf.Concat(
		"media-type",
		abnf.Repeat1Inf("type", tchar),
		char("/", '/'),
		abnf.Repeat1Inf("subtype", tchar),
		abnf.Repeat0Inf(
			"parameters",
			abnf.Concat("parameter-section", ows, char(";", ';'), ows, abnf.Optional("[ parameter ]", parameter)),
		),
	)
)

// RFC 9110 Section 8.8.3 and 13.1.1.
// Any octet except DQUOTE is accepted inside the opaque tag.
var (
	opaqueTag = abnf.Concat(
		"opaque-tag",
		dquote,
		abnf.Repeat0Inf("*etagc", abnf.AltFirst("etagc", chars("%x00-21", 0x00, 0x21), chars("%x23-FF", 0x23, 0xFF))),
		dquote,
	)
	entityTag = abnf.Concat(
		"entity-tag",
		abnf.Optional("[ weak ]", abnf.Concat("weak", char("%x57", 'W'), char("/", '/'))),
		opaqueTag,
	)
	etagElem = abnf.AltFirst("etag-elem", char("*", '*'), entityTag)
)

// RFC 9110 Section 14.1.
// Empty list elements and OWS around them are allowed, as for any #rule list.
var (
	listSep   = abnf.Concat("list-sep", ows, char(",", ','), ows)
	rangeSpec = abnf.AltFirst(
		"range-spec",
		abnf.Concat("int-range", digits("first-pos"), char("-", '-'), abnf.Optional("[ last-pos ]", digits("last-pos"))),
		abnf.Concat("suffix-range", char("-", '-'), digits("suffix-length")),
	)
	rangesSpecifier = abnf.Concat(
		"ranges-specifier",
		abnf.Literal("range-unit", []byte("bytes")),
		char("=", '='),
		ows,
		abnf.Repeat0Inf("*( \",\" OWS )", abnf.Concat("empty-elem", char(",", ','), ows)),
		rangeSpec,
		abnf.Repeat0Inf("*( OWS \",\" [ OWS range-spec ] )", abnf.Concat("range-tail", listSep, abnf.Optional("[ range-spec ]", rangeSpec))),
	)
)
