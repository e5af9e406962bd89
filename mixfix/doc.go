/*
Package mixfix is the structured expression parser: it consumes the Raw
tree produced by package rawreader, together with a caller-assembled
Grammar (a precedence-ordered stack of levels), and produces a resolved
ast.Exp tree or a parse error.

A Grammar mirrors an accumulate-then-build pattern: register levels with
Prefix/Postfix/Infixl/Infixr/Nonfix/App/Atom, then call Build to finalize
them. Build
closes the fixpoint that lets a mixfix template's internal holes — the
`_` positions inside `if _ then _ else _` — recurse through the entire
grammar rather than just the next-higher-precedence level, which is what
lets "if x + y then z" accept a full low-precedence expression inside the
"if" hole.
*/
package mixfix
