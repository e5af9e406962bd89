package mixfix

import (
	"fmt"
	"strings"

	"github.com/gomixfix/mixfix/ast"
	"github.com/gomixfix/mixfix/combinator"
)

// Kind classifies a Error.
type Kind string

const (
	KindNoParse       Kind = "no_parse"
	KindAmbiguous     Kind = "ambiguous_parse"
	KindBadHiddenApp  Kind = "bad_hidden_app"
	KindEmptyOperator Kind = "empty_operator"
)

// Error is the library's sole error shape: a kind plus a human-readable
// message. For a KindAmbiguous error from ParseExp, Candidates holds the
// candidate Exps the driver collected — it stops after the second
// whole-input parse, so at most two — so a caller can inspect them without
// re-parsing.
type Error struct {
	Kind       Kind
	Message    string
	Candidates []ast.Exp
}

func (e *Error) Error() string { return e.Message }

// ParseExp converts r into an Exp under grammar g. g.Build must already
// have been called. The library never panics on well-typed input: an
// empty operator template built via Grammar.Op is a programmer error,
// and is only discovered here, converted from an internal panic into a
// KindEmptyOperator Error per §7.
func ParseExp(g *Grammar, r ast.Raw) (exp ast.Exp, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if _, ok := rec.(emptyOperatorPanic); ok {
				exp, err = nil, &Error{Kind: KindEmptyOperator, Message: "empty mixfix operator"}
				return
			}
			panic(rec)
		}
	}()
	return parseExp(g, r)
}

func parseExp(g *Grammar, r ast.Raw) (ast.Exp, error) {
	switch n := r.(type) {
	case ast.Name:
		return ast.Id{Name: n.Value}, nil
	case ast.RawLit:
		return ast.Lit{Value: n.Value}, nil
	case ast.Paren:
		return parseExp(g, n.Inner)
	case ast.Braces:
		return nil, &Error{Kind: KindBadHiddenApp, Message: "bad hidden app"}
	case ast.RawApp:
		return parseRawApp(g, n.Children)
	case ast.AppR:
		fn, err := parseExp(g, n.Func)
		if err != nil {
			return nil, err
		}
		argVal, err := parseExp(g, n.Arg.Value)
		if err != nil {
			return nil, err
		}
		return ast.App{Fn: fn, Arg: ast.Arg[ast.Exp]{Hiding: n.Arg.Hiding, Value: argVal}}, nil
	case ast.OpR:
		args := make([]ast.Exp, len(n.Args))
		for i, a := range n.Args {
			e, err := parseExp(g, a)
			if err != nil {
				return nil, err
			}
			args[i] = e
		}
		return ast.Op{Parts: n.Parts, Args: args, Fixity: n.Fixity}, nil
	default:
		return nil, &Error{Kind: KindNoParse, Message: fmt.Sprintf("mixfix: unrecognized Raw variant %T", r)}
	}
}

// parseRawApp runs the grammar's top-level parser over an application
// spine and decides no-parse / success / ambiguous per §4.3.3 and §4.4.
func parseRawApp(g *Grammar, children []ast.Raw) (ast.Exp, error) {
	results := combinator.Take(combinator.Parse(g.top(), children), 2)
	switch len(results) {
	case 0:
		return nil, &Error{Kind: KindNoParse, Message: "no parse"}
	case 1:
		return parseExp(g, results[0])
	default:
		candidates := make([]ast.Exp, 0, len(results))
		renderings := make([]string, 0, len(results))
		for _, raw := range results {
			e, err := parseExp(g, raw)
			if err != nil {
				continue
			}
			candidates = append(candidates, e)
			renderings = append(renderings, e.String())
		}
		return nil, &Error{
			Kind:       KindAmbiguous,
			Message:    fmt.Sprintf("ambiguous parse: %s", strings.Join(renderings, "; ")),
			Candidates: candidates,
		}
	}
}
