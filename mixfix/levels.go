package mixfix

import (
	"github.com/gomixfix/mixfix/ast"
	"github.com/gomixfix/mixfix/combinator"
)

func opOf(m OpMatch, args []ast.Raw, fixity ast.Fixity) ast.Raw {
	return ast.OpR{Parts: m.Parts, Args: args, Fixity: fixity}
}

// Prefix parses zero or more occurrences of any operator in opPs followed
// by a p, right-folding: op1 op2 ... opk e -> op1(op2(...(opk e))). Each
// application extends the matched operator's internal args by appending
// the operand fetched so far.
func (g *Grammar) Prefix(opPs ...OpTemplate) *Grammar {
	opP := combinator.Choice(opPs...)
	g.levels = append(g.levels, func(p RP) RP {
		return combinator.Bind(combinator.Many(opP), func(ops []OpMatch) RP {
			return combinator.Map(p, func(e ast.Raw) ast.Raw {
				result := e
				for i := len(ops) - 1; i >= 0; i-- {
					m := ops[i]
					result = opOf(m, append(append([]ast.Raw{}, m.Inner...), result), ast.FixPrefix)
				}
				return result
			})
		})
	})
	return g
}

// Postfix is the mirror of Prefix, left-folding: e op1 op2 ... ->
// (((e op1) op2) ...). Each application prepends the operand to the
// matched operator's internal args.
func (g *Grammar) Postfix(opPs ...OpTemplate) *Grammar {
	opP := combinator.Choice(opPs...)
	g.levels = append(g.levels, func(p RP) RP {
		return combinator.Bind(p, func(e ast.Raw) RP {
			return combinator.Map(combinator.Many(opP), func(ops []OpMatch) ast.Raw {
				result := e
				for _, m := range ops {
					result = opOf(m, append([]ast.Raw{result}, m.Inner...), ast.FixPostfix)
				}
				return result
			})
		})
	})
	return g
}

func binop(opP OpTemplate, fixity ast.Fixity) combinator.Parser[ast.Raw, func(ast.Raw, ast.Raw) ast.Raw] {
	return combinator.Map(opP, func(m OpMatch) func(ast.Raw, ast.Raw) ast.Raw {
		return func(x, y ast.Raw) ast.Raw {
			args := append(append([]ast.Raw{x}, m.Inner...), y)
			return opOf(m, args, fixity)
		}
	})
}

// Infixl is left-associative binary composition: chainl1(p, opP).
func (g *Grammar) Infixl(opPs ...OpTemplate) *Grammar {
	opP := combinator.Choice(opPs...)
	g.levels = append(g.levels, func(p RP) RP {
		return combinator.ChainL1(p, binop(opP, ast.FixInfixL))
	})
	return g
}

// Infixr is the right-associative variant, via chainr1.
func (g *Grammar) Infixr(opPs ...OpTemplate) *Grammar {
	opP := combinator.Choice(opPs...)
	g.levels = append(g.levels, func(p RP) RP {
		return combinator.ChainR1(p, binop(opP, ast.FixInfixR))
	})
	return g
}

// Nonfix yields both opP's matches and p's results (Alt: neither branch
// shadows the other, opP's come first). A matched operator stands
// alone with no outer operand slots (a closed/bracket operator, e.g.
// "[" _ "]").
func (g *Grammar) Nonfix(opPs ...OpTemplate) *Grammar {
	opP := combinator.Choice(opPs...)
	g.levels = append(g.levels, func(p RP) RP {
		closed := combinator.Map(opP, func(m OpMatch) ast.Raw {
			return opOf(m, m.Inner, ast.FixClosed)
		})
		return combinator.Alt(closed, p)
	})
	return g
}

func isBraces(r ast.Raw) bool {
	_, ok := r.(ast.Braces)
	return ok
}

func appArg(p RP) combinator.Parser[ast.Raw, ast.Arg[ast.Raw]] {
	hidden := combinator.Map(
		combinator.Filter(p, isBraces),
		func(r ast.Raw) ast.Arg[ast.Raw] {
			return ast.Arg[ast.Raw]{Hiding: ast.Hidden, Value: r.(ast.Braces).Inner}
		},
	)
	visible := combinator.Map(
		combinator.Filter(p, func(r ast.Raw) bool { return !isBraces(r) }),
		func(r ast.Raw) ast.Arg[ast.Raw] { return ast.Arg[ast.Raw]{Hiding: ast.NotHidden, Value: r} },
	)
	return combinator.Alt(hidden, visible)
}

// App is juxtaposition application: one p, then a sequence of argument
// atoms, each non-hidden (any p result whose root is not Braces) or
// hidden (a Braces(inner), contributing Arg(Hidden, inner)). Left-folds
// into nested AppR.
func (g *Grammar) App() *Grammar {
	g.levels = append(g.levels, func(p RP) RP {
		arg := appArg(p)
		return combinator.Bind(p, func(head ast.Raw) RP {
			return combinator.Map(combinator.Many(arg), func(args []ast.Arg[ast.Raw]) ast.Raw {
				result := head
				for _, a := range args {
					result = ast.AppR{Func: result, Arg: a}
				}
				return result
			})
		})
	})
	return g
}

// Ident matches a Name token whose value satisfies allowed.
func Ident(allowed func(string) bool) RP {
	return combinator.Satisfy(func(r ast.Raw) bool {
		n, ok := r.(ast.Name)
		return ok && allowed(n.Value)
	})
}

// AtomOther matches any token that is not a Name: RawLit, Paren, Braces.
// It is a negative predicate rather than an exhaustive type switch so a
// future Raw variant needs no change here.
func AtomOther() RP {
	return combinator.Satisfy(func(r ast.Raw) bool {
		_, isName := r.(ast.Name)
		return !isName
	})
}

// Atom is the terminal level: an identifier in allowed, or any non-Name
// token returned verbatim.
func (g *Grammar) Atom(allowed func(string) bool) *Grammar {
	g.levels = append(g.levels, func(RP) RP {
		return combinator.Alt(Ident(allowed), AtomOther())
	})
	return g
}
