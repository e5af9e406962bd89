/*
Package combinator provides a small nondeterministic parser combinator
kernel over an arbitrary token type. A Parser returns every way it can
succeed on a prefix of its input, not just the first — this is the
"list-of-successes" style, and it is load-bearing: the mixfix driver uses it
to detect ambiguous grammars instead of silently picking a branch.

The kernel is instantiated twice in this module: over bytes, for the raw
reader (package rawreader), and over ast.Raw tokens, for the mixfix
expression parser (package mixfix).
*/
package combinator
