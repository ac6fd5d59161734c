// Package nfa: postfix compiler (spec.md §4.G) and automaton finalizer
// (§4.H).
package nfa

import (
	"github.com/tnfa/trex/internal/stateset"
	"github.com/tnfa/trex/token"
)

// DefaultMaxStates bounds how many states a single compilation may
// allocate. spec.md's reference implementation fixes this at 64 so a
// state-set fits one machine word; this package instead widens the
// state-set representation (internal/stateset) and keeps a much larger,
// merely defensive ceiling — a pathologically nested pattern still can't
// exhaust memory compiling it, but ordinary patterns never come close.
const DefaultMaxStates = 1 << 16

// Compile evaluates a postfix token.Program with the fragment stack
// described by spec.md §4.G, then finalizes the result into an Automaton
// (§4.H). It returns (nil, err) for a program that underflows the
// fragment stack, leaves more than one fragment, or would exceed
// DefaultMaxStates states — callers implementing the compile surface's
// silent-degradation policy treat any error here as "use the empty
// program" (see the root package's Compile).
//
// An empty program (len(prog) == 0) is not an error: it produces a
// one-state automaton whose single state is both start and accept, so
// Match accepts the empty input and rejects everything else — the
// resolution to the Open Question in spec.md §9 documented in
// SPEC_FULL.md.
func Compile(prog token.Program) (*Automaton, error) {
	return CompileWithLimit(prog, DefaultMaxStates)
}

// CompileWithLimit is Compile with an explicit state-count ceiling.
func CompileWithLimit(prog token.Program, maxStates int) (*Automaton, error) {
	bld := newBuilder()

	if len(prog) == 0 {
		s := bld.newState()
		return finalize(bld, fragment{start: s, end: s})
	}

	stack := make([]fragment, 0, len(prog))
	for _, it := range prog {
		switch it.Kind {
		case token.Operand:
			stack = append(stack, sym(bld, it.Value))
		case token.Concat:
			if len(stack) < 2 {
				return nil, ErrFragmentStack
			}
			b, a := stack[len(stack)-1], stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			stack = append(stack, concat(bld, a, b))
		case token.Alternation:
			if len(stack) < 2 {
				return nil, ErrFragmentStack
			}
			b, a := stack[len(stack)-1], stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			stack = append(stack, alt(bld, a, b))
		case token.KleeneStar:
			if len(stack) < 1 {
				return nil, ErrFragmentStack
			}
			a := stack[len(stack)-1]
			stack[len(stack)-1] = star(bld, a)
		case token.PositiveClosure:
			if len(stack) < 1 {
				return nil, ErrFragmentStack
			}
			a := stack[len(stack)-1]
			stack[len(stack)-1] = plus(bld, a)
		case token.Optional:
			if len(stack) < 1 {
				return nil, ErrFragmentStack
			}
			a := stack[len(stack)-1]
			stack[len(stack)-1] = opt(bld, a)
		default:
			return nil, ErrFragmentStack
		}
		if bld.numStates() > maxStates {
			return nil, ErrTooManyStates
		}
	}

	if len(stack) != 1 {
		return nil, ErrFragmentStack
	}

	return finalize(bld, stack[0])
}

// finalize packs the builder's raw triples into a dense
// state × column -> state-set table and precomputes every state's
// ε-closure (spec.md §4.H).
func finalize(bld *builder, final fragment) (*Automaton, error) {
	n := bld.numStates()
	alphaLen := bld.alphabet.Len()

	table := make([]stateset.Set, n*alphaLen)
	for i := range table {
		table[i] = stateset.New(n)
	}
	for _, tr := range bld.transitions {
		table[int(tr.from)*alphaLen+tr.col].Insert(int(tr.to))
	}

	closures := make([]stateset.Set, n)
	for s := 0; s < n; s++ {
		closures[s] = epsilonClosure(table, alphaLen, n, StateID(s))
	}

	accept := stateset.New(n)
	accept.Insert(int(final.end))

	return &Automaton{
		start:     final.start,
		accept:    accept,
		alphabet:  bld.alphabet,
		table:     table,
		closures:  closures,
		numStates: n,
	}, nil
}

// epsilonClosure computes the least fixed point of ε-reachability from s,
// including s itself, by worklist expansion over the ε column (column 0).
func epsilonClosure(table []stateset.Set, alphaLen, n int, s StateID) stateset.Set {
	closure := stateset.New(n)
	closure.Insert(int(s))

	worklist := []StateID{s}
	for len(worklist) > 0 {
		cur := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		succ := table[int(cur)*alphaLen+transitionEpsilon]
		succ.Bits(func(id int) {
			if !closure.Contains(id) {
				closure.Insert(id)
				worklist = append(worklist, StateID(id))
			}
		})
	}
	return closure
}
