// Package gomixfix resolves flat, pre-tokenized expression fragments into
// fully-structured abstract syntax trees according to a user-supplied
// mixfix operator grammar.
//
// Example usage:
//
//	package main
//
//	import (
//		"fmt"
//		"github.com/gomixfix/mixfix/mixfix"
//		gomixfix "github.com/gomixfix/mixfix"
//	)
//
//	func main() {
//		g := mixfix.NewGrammar()
//		g.Infixl(g.Op("+"), g.Op("-"))
//		g.Atom(func(s string) bool { return s == "x" || s == "y" })
//		g.Build()
//
//		exp, errs := gomixfix.Parse("x + y", g)
//		fmt.Println(exp, errs)
//	}
package gomixfix

import (
	"github.com/gomixfix/mixfix/ast"
	"github.com/gomixfix/mixfix/mixfix"
	"github.com/gomixfix/mixfix/rawreader"
)

// Parse is a convenience function combining the raw reader and the
// structured driver: it reads input into a Raw tree, then resolves that
// tree into an Exp under grammar g (which must already have had Build
// called on it).
func Parse(input string, g *mixfix.Grammar) (ast.Exp, error) {
	raw, err := rawreader.Parse(input)
	if err != nil {
		return nil, err
	}
	return mixfix.ParseExp(g, raw)
}

// Version identifies this module's release.
const Version = "0.1.0"
