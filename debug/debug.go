// Package debug provides deep-dump helpers for inspecting Raw and Exp
// trees during development and in test failure output.
package debug

import (
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/gomixfix/mixfix/ast"
)

var cfg = &spew.ConfigState{
	Indent:                  "   ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	ContinueOnMethod:        false,
}

// DumpRaw returns a deep, field-by-field representation of a Raw tree,
// ignoring its String method so nested variants are fully expanded.
func DumpRaw(r ast.Raw) string {
	var b strings.Builder
	cfg.Fdump(&b, r)
	return b.String()
}

// DumpExp is DumpRaw for an Exp tree.
func DumpExp(e ast.Exp) string {
	var b strings.Builder
	cfg.Fdump(&b, e)
	return b.String()
}

// Print writes a DumpRaw/DumpExp-style representation of any Raw or Exp
// node to stdout.
func Print(node any) {
	cfg.Dump(node)
}
