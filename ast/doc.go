/*
Package ast defines the tree types produced by the two parsing stages of the
mixfix expression parser.

Raw is the shallow tree produced by the raw reader: names, integer literals,
parenthesized and braced groups, and unresolved whitespace-juxtaposition
application spines. Exp is the fully-resolved tree produced once the mixfix
grammar has reconciled operators, application, and hidden arguments.

Both trees are immutable once constructed: Raw is built by the rawreader
package and consumed by mixfix, Exp is returned to the caller.
*/
package ast
