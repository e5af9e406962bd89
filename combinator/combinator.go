package combinator

import "iter"

// Result pairs one possible parse value with the input left unconsumed
// after producing it.
type Result[T, R any] struct {
	Value R
	Rest  []T
}

// Parser is a nondeterministic parser over token type T producing values of
// type R: given an input, it yields every (value, remaining input) pair it
// can produce. It is a pull-based sequence rather than an eagerly
// materialized slice, so a caller that only needs to know whether there are
// 0, 1 or "at least 2" whole-input parses (the mixfix driver's ambiguity
// check, §5) can stop pulling after the second success instead of forcing
// every branch of a combinatorially large grammar.
type Parser[T, R any] func(input []T) iter.Seq[Result[T, R]]

// Return succeeds with x, consuming nothing.
func Return[T, R any](x R) Parser[T, R] {
	return func(input []T) iter.Seq[Result[T, R]] {
		return func(yield func(Result[T, R]) bool) {
			yield(Result[T, R]{Value: x, Rest: input})
		}
	}
}

// Fail yields no results.
func Fail[T, R any]() Parser[T, R] {
	return func(input []T) iter.Seq[Result[T, R]] {
		return func(yield func(Result[T, R]) bool) {}
	}
}

// Satisfy consumes one token if pred holds for it.
func Satisfy[T any](pred func(T) bool) Parser[T, T] {
	return func(input []T) iter.Seq[Result[T, T]] {
		return func(yield func(Result[T, T]) bool) {
			if len(input) == 0 || !pred(input[0]) {
				return
			}
			yield(Result[T, T]{Value: input[0], Rest: input[1:]})
		}
	}
}

// Bind runs p, then for each (x, rest) it produces, runs f(x) on rest,
// yielding the union of every resulting (value, rest) pair.
func Bind[T, R, S any](p Parser[T, R], f func(R) Parser[T, S]) Parser[T, S] {
	return func(input []T) iter.Seq[Result[T, S]] {
		return func(yield func(Result[T, S]) bool) {
			for r := range p(input) {
				for s := range f(r.Value)(r.Rest) {
					if !yield(s) {
						return
					}
				}
			}
		}
	}
}

// Map transforms the value produced by p, leaving its set of successes
// otherwise unchanged.
func Map[T, R, S any](p Parser[T, R], f func(R) S) Parser[T, S] {
	return Bind(p, func(r R) Parser[T, S] { return Return[T, S](f(r)) })
}

// Then runs pa then pb, keeping pb's value. Sugar over Bind for the common
// "match and discard" case (skipping a delimiter, for instance).
func Then[T, A, B any](pa Parser[T, A], pb Parser[T, B]) Parser[T, B] {
	return Bind(pa, func(A) Parser[T, B] { return pb })
}

// ThenL runs pa then pb, keeping pa's value and discarding pb's.
func ThenL[T, A, B any](pa Parser[T, A], pb Parser[T, B]) Parser[T, A] {
	return Bind(pa, func(a A) Parser[T, A] {
		return Map(pb, func(B) A { return a })
	})
}

// Filter keeps only the results of p whose value satisfies keep.
func Filter[T, R any](p Parser[T, R], keep func(R) bool) Parser[T, R] {
	return Bind(p, func(r R) Parser[T, R] {
		if keep(r) {
			return Return[T, R](r)
		}
		return Fail[T, R]()
	})
}

// Alt runs both p and q on the same input and yields the union of their
// results. It is symmetric and preserves ambiguity: unlike a PEG-style
// ordered choice, neither branch shadows the other.
func Alt[T, R any](p, q Parser[T, R]) Parser[T, R] {
	return func(input []T) iter.Seq[Result[T, R]] {
		return func(yield func(Result[T, R]) bool) {
			for r := range p(input) {
				if !yield(r) {
					return
				}
			}
			for r := range q(input) {
				if !yield(r) {
					return
				}
			}
		}
	}
}

// Choice is n-ary Alt.
func Choice[T, R any](ps ...Parser[T, R]) Parser[T, R] {
	return func(input []T) iter.Seq[Result[T, R]] {
		return func(yield func(Result[T, R]) bool) {
			for _, p := range ps {
				for r := range p(input) {
					if !yield(r) {
						return
					}
				}
			}
		}
	}
}

// Many parses zero or more occurrences of p, left to right. Because the
// kernel is nondeterministic, every prefix count is offered as a distinct
// alternative (not just the greedy maximal match) — this is what lets
// infixl/infixr chains above it resolve associativity by elimination rather
// than by a hardwired greedy rule.
func Many[T, R any](p Parser[T, R]) Parser[T, []R] {
	return Alt(Many1(p), Return[T, []R](nil))
}

// Many1 is Many, requiring at least one occurrence.
func Many1[T, R any](p Parser[T, R]) Parser[T, []R] {
	return Bind(p, func(x R) Parser[T, []R] {
		return Map(Many(p), func(xs []R) []R {
			return append([]R{x}, xs...)
		})
	})
}

// ChainL1 parses `p (opP p)*`, left-associating the result via the combiner
// each opP match produces.
func ChainL1[T, R any](p Parser[T, R], opP Parser[T, func(R, R) R]) Parser[T, R] {
	return Bind(p, func(first R) Parser[T, R] {
		return chainLRest(first, p, opP)
	})
}

func chainLRest[T, R any](acc R, p Parser[T, R], opP Parser[T, func(R, R) R]) Parser[T, R] {
	return Alt(
		Bind(opP, func(combine func(R, R) R) Parser[T, R] {
			return Bind(p, func(next R) Parser[T, R] {
				return chainLRest(combine(acc, next), p, opP)
			})
		}),
		Return[T, R](acc),
	)
}

// ChainR1 is the right-associative variant of ChainL1.
func ChainR1[T, R any](p Parser[T, R], opP Parser[T, func(R, R) R]) Parser[T, R] {
	return Bind(p, func(x R) Parser[T, R] {
		return Alt(
			Bind(opP, func(combine func(R, R) R) Parser[T, R] {
				return Map(ChainR1(p, opP), func(y R) R { return combine(x, y) })
			}),
			Return[T, R](x),
		)
	})
}

// Parse runs p over input and yields only the values that consumed the
// entire input — the set the driver inspects to decide no-parse / success
// / ambiguous.
func Parse[T, R any](p Parser[T, R], input []T) iter.Seq[R] {
	return func(yield func(R) bool) {
		for r := range p(input) {
			if len(r.Rest) == 0 {
				if !yield(r.Value) {
					return
				}
			}
		}
	}
}

// Take pulls at most n values from seq. It is how callers exploit Parse's
// laziness: Take(Parse(p, input), 2) decides 0-vs-1-vs-ambiguous and stops
// pulling as soon as a second whole-input parse arrives; a 0 or 1 answer
// still needs the whole sequence.
func Take[R any](seq iter.Seq[R], n int) []R {
	out := make([]R, 0, n)
	for v := range seq {
		out = append(out, v)
		if len(out) >= n {
			break
		}
	}
	return out
}
