package mixfix

import (
	"iter"

	"github.com/gomixfix/mixfix/ast"
	"github.com/gomixfix/mixfix/combinator"
)

// RP is the kernel instantiated over Raw: a parser whose tokens and results
// are both Raw nodes.
type RP = combinator.Parser[ast.Raw, ast.Raw]

// Level is a single precedence stratum: given the parser for the
// next-higher-precedence level, it produces a parser for its own level.
type Level func(p RP) RP

// OpMatch is the result of matching one occurrence of a mixfix operator's
// identifier fragments, before a level constructor decides how it combines
// with its outer operands (Fixity is assigned there, not here).
type OpMatch struct {
	Parts []string
	Inner []ast.Raw // len(Inner) == len(Parts) - 1
}

// OpTemplate recognizes one occurrence of a specific operator template.
// Internal holes — the positions strictly between the identifier
// fragments — are always filled by the grammar's fixpoint, not by the
// level's own next-higher parser: `if x + y then z` must accept the
// low-precedence expression "x + y" inside the "if" hole.
type OpTemplate = combinator.Parser[ast.Raw, OpMatch]

type emptyOperatorPanic struct{}

// cell is the one-shot mutable indirection the fixpoint closes over: every
// OpTemplate and every Level built before Grammar.Build captures cell by
// reference, and Build assigns cell.p exactly once, after every level has
// been folded. Per §9's design note this avoids constructing a live cyclic
// parser value.
type cell struct {
	p RP
}

// Grammar accumulates precedence levels low-to-high via its registration
// methods, then finalizes them into an immutable parser via Build.
type Grammar struct {
	cell   *cell
	levels []Level
}

// NewGrammar starts an empty grammar.
func NewGrammar() *Grammar {
	return &Grammar{cell: &cell{}}
}

// top is a deref parser: it looks up g.cell.p lazily, at parse time, so it
// can be closed over before Build has assigned cell.p.
func (g *Grammar) top() RP {
	return func(input []ast.Raw) iter.Seq[combinator.Result[ast.Raw, ast.Raw]] {
		return func(yield func(combinator.Result[ast.Raw, ast.Raw]) bool) {
			for r := range g.cell.p(input) {
				if !yield(r) {
					return
				}
			}
		}
	}
}

func matchName(s string) RP {
	return combinator.Satisfy(func(r ast.Raw) bool {
		n, ok := r.(ast.Name)
		return ok && n.Value == s
	})
}

// Op declares a mixfix operator template: the identifier fragments parts,
// in order, with the grammar's fixpoint filling every internal hole. Fails
// at parse time with "empty mixfix operator" if parts is empty — per §7,
// an invalid grammar construction is a programmer error reported when the
// broken template is actually exercised, not when Op is called.
func (g *Grammar) Op(parts ...string) OpTemplate {
	return opTemplateParser(parts, g.top())
}

func opTemplateParser(parts []string, hole RP) OpTemplate {
	if len(parts) == 0 {
		return func(input []ast.Raw) iter.Seq[combinator.Result[ast.Raw, OpMatch]] {
			return func(yield func(combinator.Result[ast.Raw, OpMatch]) bool) {
				panic(emptyOperatorPanic{})
			}
		}
	}
	return combinator.Bind(matchName(parts[0]), func(ast.Raw) OpTemplate {
		return opTemplateRest(parts, 1, nil, hole)
	})
}

func opTemplateRest(parts []string, i int, inner []ast.Raw, hole RP) OpTemplate {
	if i == len(parts) {
		return combinator.Return[ast.Raw, OpMatch](OpMatch{Parts: parts, Inner: inner})
	}
	return combinator.Bind(hole, func(arg ast.Raw) OpTemplate {
		return combinator.Bind(matchName(parts[i]), func(ast.Raw) OpTemplate {
			return opTemplateRest(parts, i+1, append(append([]ast.Raw{}, inner...), arg), hole)
		})
	})
}

// Build folds the accumulated levels into a single fixpoint parser,
// assigns it to the shared cell, and returns it. Calling Build more than
// once re-folds the same levels into the same cell; ParseExp only ever
// needs the value it returns.
func (g *Grammar) Build() RP {
	top := g.top()
	acc := top
	for i := len(g.levels) - 1; i >= 0; i-- {
		acc = g.levels[i](acc)
	}
	g.cell.p = acc
	return top
}
