package nfa

import "github.com/tnfa/trex/internal/stateset"

// Match runs the bit-set subset simulation of spec.md §4.I over automaton
// m and input. Acceptance is anchored at both ends: every byte of input
// must be consumed, and the final state-set must intersect the accept
// states — there is no implicit leading or trailing ".*".
func Match(m *Automaton, input []byte) bool {
	current := m.EpsilonClosure(m.start).Clone()

	for _, by := range input {
		col := m.alphabet.Col(by)
		if col == -1 {
			return false
		}

		next := stateset.New(m.numStates)
		current.Bits(func(s int) {
			next.UnionFrom(m.step(StateID(s), col))
		})

		expanded := stateset.New(m.numStates)
		next.Bits(func(s int) {
			expanded.UnionFrom(m.EpsilonClosure(StateID(s)))
		})

		if expanded.IsEmpty() {
			return false
		}
		current = expanded
	}

	return current.Intersects(m.accept)
}
