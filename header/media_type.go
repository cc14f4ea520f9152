package header

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/httphdr/internal/grammar"
	"github.com/ghettovoice/httphdr/internal/util"
)

// MediaType holds media type information, for example "text/html;charset=utf-8".
// Parameter values are kept in their raw form, quoted values keep their quotes.
type MediaType struct {
	Type    string
	Subtype string
	Params  Values
}

// ParseMediaType parses a single media type.
func ParseMediaType(s string) (MediaType, error) {
	node, err := grammar.ParseMediaType(util.TrimSP(s))
	if err != nil {
		return MediaType{}, errtrace.Wrap(newMalformedValueErr(err))
	}
	return buildFromMediaTypeNode(node), nil
}

// ParseMediaTypes parses a comma-separated list of media types.
// Commas inside quoted parameter values do not split the list.
func ParseMediaTypes(s string) ([]MediaType, error) {
	elems := splitQuoted(s)
	mts := make([]MediaType, 0, len(elems))
	for _, e := range elems {
		mt, err := ParseMediaType(e)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		mts = append(mts, mt)
	}
	return mts, nil
}

// MediaTypesString renders media types as a comma-separated list.
func MediaTypesString(mts []MediaType) string { return joinValues(mts, ", ") }

func buildFromMediaTypeNode(node *abnf.Node) MediaType {
	mt := MediaType{
		Type:    grammar.MustGetNode(node, "type").String(),
		Subtype: grammar.MustGetNode(node, "subtype").String(),
	}
	for _, paramNode := range node.GetNodes("parameter") {
		if mt.Params == nil {
			mt.Params = make(Values)
		}
		mt.Params.Append(
			grammar.MustGetNode(paramNode, "parameter-name").String(),
			grammar.MustGetNode(paramNode, "parameter-value").String(),
		)
	}
	return mt
}

func (mt MediaType) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	fmt.Fprint(sb, mt.Type, "/", mt.Subtype)

	if len(mt.Params) > 0 {
		kvs := make([][]string, 0, len(mt.Params))
		for k := range mt.Params {
			v, _ := mt.Params.Last(k)
			kvs = append(kvs, []string{util.LCase(k), v})
		}
		slices.SortFunc(kvs, util.CmpKVs)
		for _, kv := range kvs {
			fmt.Fprint(sb, ";", kv[0], "=", kv[1])
		}
	}

	return sb.String()
}

func (mt MediaType) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, mt.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(mt.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, mt.String())
			return
		}

		type hideMethods MediaType
		type MediaType hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), MediaType(mt))
		return
	}
}

// IsWildcardType checks whether the type is "*".
func (mt MediaType) IsWildcardType() bool { return mt.Type == "*" }

// IsWildcardSubtype checks whether the subtype is "*" or has the "*+suffix" form.
func (mt MediaType) IsWildcardSubtype() bool {
	return mt.Subtype == "*" || strings.HasPrefix(mt.Subtype, "*+")
}

// Param returns the last value of the named parameter with quotes removed.
func (mt MediaType) Param(name string) (string, bool) {
	v, ok := mt.Params.Last(name)
	if !ok {
		return "", false
	}
	return grammar.Unquote(v), true
}

// Charset returns the value of the charset parameter.
func (mt MediaType) Charset() (Charset, bool) {
	v, ok := mt.Param("charset")
	if !ok {
		return "", false
	}
	return Charset(v), true
}

func (mt MediaType) Equal(val any) bool {
	var other MediaType
	switch v := val.(type) {
	case MediaType:
		other = v
	case *MediaType:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}

	return util.EqFold(mt.Type, other.Type) &&
		util.EqFold(mt.Subtype, other.Subtype) &&
		compareMediaTypeParams(mt.Params, other.Params)
}

func compareMediaTypeParams(params1, params2 Values) bool {
	names := params1.Names()
	if !slices.Equal(names, params2.Names()) {
		return false
	}
	for _, k := range names {
		v1, _ := params1.Last(k)
		v2, _ := params2.Last(k)
		v1, v2 = grammar.Unquote(v1), grammar.Unquote(v2)
		if k == "charset" {
			if !Charset(v1).Equal(Charset(v2)) {
				return false
			}
			continue
		}
		if v1 != v2 {
			return false
		}
	}
	return true
}

func (mt MediaType) IsValid() bool {
	if !grammar.IsToken(mt.Type) || !grammar.IsToken(mt.Subtype) {
		return false
	}
	for k, vs := range mt.Params {
		if !grammar.IsToken(k) {
			return false
		}
		for _, v := range vs {
			if !grammar.IsToken(v) && !grammar.IsQuoted(v) {
				return false
			}
		}
	}
	return true
}

func (mt MediaType) IsZero() bool {
	return mt.Type == "" &&
		mt.Subtype == "" &&
		len(mt.Params) == 0
}

func (mt MediaType) Clone() MediaType {
	mt.Params = mt.Params.Clone()
	return mt
}

func (mt MediaType) MarshalText() ([]byte, error) {
	return []byte(mt.String()), nil
}

func (mt *MediaType) UnmarshalText(data []byte) error {
	node, err := grammar.ParseMediaType(data)
	if err != nil {
		*mt = MediaType{}
		if errors.Is(err, grammar.ErrEmptyInput) {
			return nil
		}
		return errtrace.Wrap(newMalformedValueErr(err))
	}

	*mt = buildFromMediaTypeNode(node)
	return nil
}
