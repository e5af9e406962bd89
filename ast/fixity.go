package ast

// Fixity records which shape of operator built an Op/OpR node. The bare
// (parts, args) pair is ambiguous between a single-fragment prefix operator
// and a single-fragment postfix operator — both end up with len(parts) ==
// len(args) == 1 — so Fixity is carried alongside purely to render each
// shape correctly and to let parsing round-trip through display (§4.3.4,
// §8 invariant 2). It plays no role in ambiguity detection, which counts
// whole-input parses without comparing them.
type Fixity int

const (
	FixPrefix Fixity = iota
	FixPostfix
	FixInfixL
	FixInfixR
	FixClosed
)

// interleave joins operator fragments with already-rendered argument
// strings according to fixity, with no outer parenthesization. It is the
// shared core used by Raw.OpR.String (no precedence context) and by
// Exp.Op's precedence-aware renderer.
func interleave(parts []string, args []string, fixity Fixity) string {
	switch fixity {
	case FixPrefix:
		// n parts, n-1 internal holes, one trailing appended operand:
		// parts[0] args[0] parts[1] args[1] ... parts[n-1] args[n-1]
		s := parts[0]
		for i := 1; i < len(parts); i++ {
			s += " " + args[i-1] + " " + parts[i]
		}
		s += " " + args[len(args)-1]
		return s
	case FixPostfix:
		// mirror of prefix: leading operand, then parts interleaved with
		// the remaining internal holes.
		s := args[0]
		s += " " + parts[0]
		for i := 1; i < len(parts); i++ {
			s += " " + args[i] + " " + parts[i]
		}
		return s
	case FixInfixL, FixInfixR:
		// m = n+1: args[0] parts[0] args[1] parts[1] ... parts[n-1] args[n]
		s := args[0]
		for i, p := range parts {
			s += " " + p + " " + args[i+1]
		}
		return s
	default: // FixClosed
		// m = n-1: parts[0] args[0] parts[1] args[1] ... parts[n-1]
		s := parts[0]
		for i := 0; i < len(args); i++ {
			s += " " + args[i] + " " + parts[i+1]
		}
		return s
	}
}
