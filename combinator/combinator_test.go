package combinator

import (
	"testing"
)

func digit() Parser[byte, byte] {
	return Satisfy(func(b byte) bool { return b >= '0' && b <= '9' })
}

func letter() Parser[byte, byte] {
	return Satisfy(func(b byte) bool { return b >= 'a' && b <= 'z' })
}

func results[T, R any](p Parser[T, R], input []T) []Result[T, R] {
	var out []Result[T, R]
	for r := range p(input) {
		out = append(out, r)
	}
	return out
}

func TestReturnConsumesNothing(t *testing.T) {
	p := Return[byte, string]("x")
	rs := results(p, []byte("abc"))
	if len(rs) != 1 {
		t.Fatalf("Return() produced %d results, want 1", len(rs))
	}
	if rs[0].Value != "x" || string(rs[0].Rest) != "abc" {
		t.Errorf("Return() = %+v, want value x, rest abc", rs[0])
	}
}

func TestFailYieldsNothing(t *testing.T) {
	p := Fail[byte, string]()
	rs := results(p, []byte("abc"))
	if len(rs) != 0 {
		t.Errorf("Fail() produced %d results, want 0", len(rs))
	}
}

func TestSatisfy(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"matches first byte", "5a", 1},
		{"no match", "ab", 0},
		{"empty input", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := results(digit(), []byte(tt.input))
			if len(rs) != tt.want {
				t.Errorf("Satisfy(digit)(%q) got %d results, want %d", tt.input, len(rs), tt.want)
			}
		})
	}
}

func TestBindSequencesParsers(t *testing.T) {
	p := Bind(digit(), func(d byte) Parser[byte, string] {
		return Map(letter(), func(l byte) string {
			return string(d) + string(l)
		})
	})
	rs := results(p, []byte("5az"))
	if len(rs) != 1 {
		t.Fatalf("got %d results, want 1", len(rs))
	}
	if rs[0].Value != "5a" || string(rs[0].Rest) != "z" {
		t.Errorf("Bind() = %+v, want value 5a, rest z", rs[0])
	}
}

func TestAltUnionsBothBranches(t *testing.T) {
	p := Alt(digit(), letter())
	if rs := results(p, []byte("5")); len(rs) != 1 {
		t.Errorf("Alt matched digit: got %d results, want 1", len(rs))
	}
	if rs := results(p, []byte("a")); len(rs) != 1 {
		t.Errorf("Alt matched letter: got %d results, want 1", len(rs))
	}
	if rs := results(p, []byte("!")); len(rs) != 0 {
		t.Errorf("Alt matched neither: got %d results, want 0", len(rs))
	}
}

func TestAltIsAmbiguityPreserving(t *testing.T) {
	// Two parsers that can both match the same prefix must both appear in
	// the result set — Alt never shadows one branch with the other.
	p := Alt(digit(), digit())
	rs := results(p, []byte("5"))
	if len(rs) != 2 {
		t.Errorf("Alt(digit, digit)(%q) got %d results, want 2 (ambiguity preserved)", "5", len(rs))
	}
}

func TestChoiceIsNAryAlt(t *testing.T) {
	p := Choice(digit(), digit(), letter())
	rs := results(p, []byte("5"))
	if len(rs) != 2 {
		t.Errorf("Choice(digit, digit, letter)(%q) got %d results, want 2", "5", len(rs))
	}
}

func TestManyReturnsEveryPrefixCount(t *testing.T) {
	// Many must offer every prefix count as a distinct alternative, not
	// just the greedy maximal match — this is what lets chainl1/chainr1
	// resolve associativity by elimination.
	p := Many(digit())
	rs := results(p, []byte("123a"))
	if len(rs) != 4 { // 0, 1, 2, or 3 digits consumed
		t.Fatalf("Many(digit)(%q) got %d alternatives, want 4", "123a", len(rs))
	}
	counts := map[int]bool{}
	for _, r := range rs {
		counts[len(r.Value)] = true
	}
	for i := 0; i <= 3; i++ {
		if !counts[i] {
			t.Errorf("Many(digit) missing the %d-digit alternative", i)
		}
	}
}

func TestMany1RequiresAtLeastOne(t *testing.T) {
	rs := results(Many1(digit()), []byte("a"))
	if len(rs) != 0 {
		t.Errorf("Many1(digit)(%q) got %d results, want 0", "a", len(rs))
	}
	rs = results(Many1(digit()), []byte("1a"))
	if len(rs) == 0 {
		t.Fatalf("Many1(digit)(%q) got 0 results, want >=1", "1a")
	}
}

func sumPair(x, y byte) byte { return x + y }

func plusOp() Parser[byte, func(byte, byte) byte] {
	return Map(Satisfy(func(b byte) bool { return b == '+' }), func(byte) func(byte, byte) byte {
		return sumPair
	})
}

func TestChainL1AcceptsChain(t *testing.T) {
	// digit (+ digit)* folded left: 1+2+3 -> (1+2)+3. With byte addition
	// as the combiner the numeric value is associativity-insensitive, so
	// instead check the parser accepts the chain and consumes all input.
	p := ChainL1(digit(), plusOp())
	rs := results(p, []byte("1+2+3"))
	found := false
	for _, r := range rs {
		if len(r.Rest) == 0 {
			found = true
		}
	}
	if !found {
		t.Errorf("ChainL1 did not produce a whole-input parse of %q", "1+2+3")
	}
}

func TestChainR1AcceptsChain(t *testing.T) {
	p := ChainR1(digit(), plusOp())
	rs := results(p, []byte("1+2+3"))
	found := false
	for _, r := range rs {
		if len(r.Rest) == 0 {
			found = true
		}
	}
	if !found {
		t.Errorf("ChainR1 did not produce a whole-input parse of %q", "1+2+3")
	}
}

func TestParseOnlyWholeInputResults(t *testing.T) {
	var out []byte
	for v := range Parse(Many(digit()), []byte("12")) {
		out = v
	}
	if string(out) != "12" {
		t.Errorf("Parse() = %q, want %q", out, "12")
	}
}

func TestParseExcludesPartialParses(t *testing.T) {
	// Many(digit) also succeeds after consuming only "1", leaving "2a" —
	// Parse must reject that because it didn't consume the whole input.
	n := 0
	for range Parse(Many(digit()), []byte("12a")) {
		n++
	}
	if n != 0 {
		t.Errorf("Parse() yielded %d whole-input results for %q, want 0", n, "12a")
	}
}

func TestTakeStopsEarly(t *testing.T) {
	pulled := 0
	seq := func(yield func(int) bool) {
		for i := 0; i < 1000; i++ {
			pulled++
			if !yield(i) {
				return
			}
		}
	}
	got := Take[int](seq, 2)
	if len(got) != 2 {
		t.Fatalf("Take(seq, 2) returned %d items, want 2", len(got))
	}
	if pulled != 2 {
		t.Errorf("Take(seq, 2) pulled %d items from the source, want 2 (short-circuit)", pulled)
	}
}

func TestThenAndThenL(t *testing.T) {
	open := Satisfy(func(b byte) bool { return b == '(' })
	closeParen := Satisfy(func(b byte) bool { return b == ')' })

	keepSecond := Then(open, digit())
	rs := results(keepSecond, []byte("(5)"))
	if len(rs) != 1 || rs[0].Value != '5' || string(rs[0].Rest) != ")" {
		t.Errorf("Then() = %+v, want value '5', rest )", rs)
	}

	keepFirst := ThenL(digit(), closeParen)
	rs = results(keepFirst, []byte("5)"))
	if len(rs) != 1 || rs[0].Value != '5' || len(rs[0].Rest) != 0 {
		t.Errorf("ThenL() = %+v, want value '5', empty rest", rs)
	}
}

func TestFilterKeepsMatchingResults(t *testing.T) {
	isOdd := func(b byte) bool { return (b-'0')%2 == 1 }
	p := Filter(digit(), isOdd)
	if rs := results(p, []byte("3")); len(rs) != 1 {
		t.Errorf("Filter kept odd digit: got %d results, want 1", len(rs))
	}
	if rs := results(p, []byte("4")); len(rs) != 0 {
		t.Errorf("Filter dropped even digit: got %d results, want 0", len(rs))
	}
}

// BenchmarkChainL1SingleParse measures a full enumeration of Parse over
// ChainL1 on a run of 1000 digit-plus-digit terms, which has exactly one
// whole-input parse among the partial ones ChainL1 yields along the way.
func BenchmarkChainL1SingleParse(b *testing.B) {
	plus := Satisfy(func(bt byte) bool { return bt == '+' })
	add := Map(plus, func(byte) func(byte, byte) byte {
		return func(x, y byte) byte { return x + y }
	})
	p := ChainL1(digit(), add)

	input := make([]byte, 0, 4000)
	for i := 0; i < 1000; i++ {
		if i > 0 {
			input = append(input, '+')
		}
		input = append(input, '1')
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range Parse(p, input) {
		}
	}
}
