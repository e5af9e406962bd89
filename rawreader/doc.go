/*
Package rawreader implements the character-level stage of the parser: it
turns a source string into a shallow ast.Raw tree of names, integer
literals, parenthesized and brace-delimited groups, and whitespace-joined
application spines, without resolving any operator grammar.

It instantiates the combinator kernel over bytes, in the same spirit as a
conventional hand-rolled lexer — multi-byte UTF-8 sequences fall through
untouched into identifiers, since none of their continuation bytes collide
with the ASCII whitespace or bracket characters this grammar treats
specially.
*/
package rawreader
