package rawreader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gomixfix/mixfix/ast"
	"github.com/gomixfix/mixfix/combinator"
	"github.com/gomixfix/mixfix/mixfix"
)

type bp = combinator.Parser[byte, ast.Raw]

func isWS(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isBracket(b byte) bool {
	switch b {
	case '(', ')', '{', '}':
		return true
	}
	return false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isIdChar(b byte) bool  { return !isWS(b) && !isBracket(b) }
func isIdStart(b byte) bool { return isIdChar(b) && !isDigit(b) }

func byteIs(want byte) combinator.Parser[byte, byte] {
	return combinator.Satisfy(func(b byte) bool { return b == want })
}

var (
	ws0 = combinator.Many(combinator.Satisfy(isWS))  // zero or more
	ws1 = combinator.Many1(combinator.Satisfy(isWS)) // one or more, mandatory separator
)

func rawLit() bp {
	digits := combinator.Many1(combinator.Satisfy(isDigit))
	return combinator.Map(digits, func(ds []byte) ast.Raw {
		n, _ := strconv.ParseInt(string(ds), 10, 64)
		return ast.RawLit{Value: n}
	})
}

func name() bp {
	first := combinator.Satisfy(isIdStart)
	return combinator.Bind(first, func(c byte) bp {
		rest := combinator.Many(combinator.Satisfy(isIdChar))
		return combinator.Map(rest, func(cs []byte) ast.Raw {
			return ast.Name{Value: string(c) + string(cs)}
		})
	})
}

// paren matches '(' p0 ')', with optional padding whitespace just inside
// the brackets (the grammar's WS+ only separates RawApp siblings; this is a
// small, deliberate extension so that "( x )" reads the same as "(x)").
func paren() bp {
	open := combinator.Then(byteIs('('), ws0)
	return combinator.Bind(open, func([]byte) bp {
		return combinator.Bind(p0(), func(inner ast.Raw) bp {
			close := combinator.Then(ws0, byteIs(')'))
			return combinator.Map(close, func(byte) ast.Raw { return ast.Paren{Inner: inner} })
		})
	})
}

func braces() bp {
	open := combinator.Then(byteIs('{'), ws0)
	return combinator.Bind(open, func([]byte) bp {
		return combinator.Bind(p0(), func(inner ast.Raw) bp {
			close := combinator.Then(ws0, byteIs('}'))
			return combinator.Map(close, func(byte) ast.Raw { return ast.Braces{Inner: inner} })
		})
	})
}

// p1 is a single atom: a parenthesized or braced group, an integer literal,
// or an identifier.
func p1() bp {
	return combinator.Choice(paren(), braces(), rawLit(), name())
}

// p0 is `p1 (WS+ p1)*`, collapsing to its single child when there is
// exactly one.
func p0() bp {
	first := p1()
	return combinator.Bind(first, func(head ast.Raw) bp {
		tail := combinator.Many(combinator.Then(ws1, p1()))
		return combinator.Map(tail, func(rest []ast.Raw) ast.Raw {
			return ast.NewRawApp(append([]ast.Raw{head}, rest...))
		})
	})
}

// Parse reads s into a Raw tree. It fails with a *mixfix.Error whose message
// is "parseRaw: no parse" (KindNoParse) or "parseRaw: ambiguous parse: ..."
// (KindAmbiguous) per §6.2; for this grammar the latter
// should be unreachable, but the check is kept as a defensive invariant
// rather than assumed away.
func Parse(s string) (ast.Raw, error) {
	padded := combinator.ThenL(combinator.Then(ws0, p0()), ws0)
	results := combinator.Take(combinator.Parse(padded, []byte(s)), 2)
	switch len(results) {
	case 0:
		return nil, &mixfix.Error{Kind: mixfix.KindNoParse, Message: "parseRaw: no parse"}
	case 1:
		return results[0], nil
	default:
		renderings := make([]string, len(results))
		for i, r := range results {
			renderings[i] = r.String()
		}
		return nil, &mixfix.Error{
			Kind:    mixfix.KindAmbiguous,
			Message: fmt.Sprintf("parseRaw: ambiguous parse: %s", strings.Join(renderings, "; ")),
		}
	}
}
