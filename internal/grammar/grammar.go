// Package grammar implements the RFC 9110 rules needed by the header accessors
// on top of the ABNF operators from github.com/ghettovoice/abnf.
package grammar

//go:generate go tool errtrace -w .

import (
	"fmt"
	"strings"

	"github.com/ghettovoice/abnf"
)

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrNodeNotFound   Error = "node not found"
	ErrEmptyInput     Error = "empty input"
	ErrMalformedInput Error = "malformed input"
)

// MustGetNode returns a pointer to the ABNF node with the given key.
func MustGetNode(n *abnf.Node, k string) *abnf.Node {
	sn, ok := n.GetNode(k)
	if !ok {
		panic(fmt.Errorf("get node %q from node %q: %w", k, n.Key, ErrNodeNotFound))
	}
	return sn
}

// match applies op at the start of in and returns the longest match.
func match(op abnf.Operator, in []byte) (*abnf.Node, bool) {
	if len(in) == 0 {
		return nil, false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := op(in, 0, ns); err != nil {
		return nil, false
	}
	n := ns.Best()
	return n, n != nil
}

func matchAll[T ~string | ~[]byte](op abnf.Operator, s T) bool {
	n, ok := match(op, []byte(s))
	return ok && n.Len() == len(s)
}

// IsToken checks whether s is a token (RFC 9110 Section 5.6.2).
func IsToken[T ~string | ~[]byte](s T) bool { return matchAll(token, s) }

// IsQuoted checks whether s is a quoted-string (RFC 9110 Section 5.6.4).
func IsQuoted[T ~string | ~[]byte](s T) bool { return matchAll(quotedString, s) }

// Quote returns s as a quoted-string, escaping DQUOTE and backslash.
func Quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('"')
	return sb.String()
}

// Unquote strips the quotes of a quoted-string and resolves quoted-pairs.
// Any other input is returned unchanged.
func Unquote(s string) string {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return s
	}

	s = s[1 : len(s)-1]
	if !strings.Contains(s, `\`) {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}
