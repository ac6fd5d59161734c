package nfa

import "github.com/tnfa/trex/internal/stateset"

// Automaton is a finalized, immutable NFA: a dense state × column
// transition table plus precomputed per-state ε-closures. It is the
// nfa of spec.md §3 — safe to share across concurrent readers, since
// nothing about matching (see Match) ever mutates it.
type Automaton struct {
	start    StateID
	accept   stateset.Set
	alphabet *Alphabet

	// table[s*alphabet.Len()+c] is the state-set reachable from state s on
	// column c in exactly one step; column 0 holds the ε-successors.
	table []stateset.Set

	// closures[s] is the ε-closure of state s: every state reachable from
	// s using zero or more ε-edges, including s itself.
	closures []stateset.Set

	numStates int
}

// NumStates returns the number of states in the automaton.
func (m *Automaton) NumStates() int { return m.numStates }

// Start returns the automaton's single entry state.
func (m *Automaton) Start() StateID { return m.start }

// IsAccept reports whether s is an accept state.
func (m *Automaton) IsAccept(s StateID) bool { return m.accept.Contains(int(s)) }

// Alphabet returns the automaton's byte-to-column registry.
func (m *Automaton) Alphabet() *Alphabet { return m.alphabet }

// EpsilonClosure returns the precomputed ε-closure of state s.
func (m *Automaton) EpsilonClosure(s StateID) stateset.Set { return m.closures[s] }

// step returns the state-set reachable from s on alphabet column c in one
// non-ε transition.
func (m *Automaton) step(s StateID, col int) stateset.Set {
	return m.table[int(s)*m.alphabet.Len()+col]
}
