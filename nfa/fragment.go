package nfa

// fragment is a partial NFA with exactly one entry state and one accept
// state — spec.md's t_nfa. Every constructor below returns a fragment whose
// start has no incoming transition and whose end has no outgoing one. An
// edge into an operand's start or out of its end (concat's join, plus's
// loop-back) is added only when that operand becomes interior to the new
// fragment. That invariant is what makes the six constructors
// compositional: once built, a fragment can be embedded in a larger one
// without its interior being disturbed.
type fragment struct {
	start, end StateID
}

// sym builds the one-symbol fragment matching a single literal byte.
func sym(b *builder, by byte) fragment {
	s := b.newState()
	e := b.newState()
	b.addTransition(s, by, e)
	return fragment{start: s, end: e}
}

// concat sequences A then B: a single ε-edge lets A's accept proceed into
// B's entry. No new boundary states are needed since the join itself isn't
// a boundary either fragment must protect.
func concat(bld *builder, a, b fragment) fragment {
	bld.addEpsilon(a.end, b.start)
	return fragment{start: a.start, end: b.end}
}

// alt builds A|B: a fresh entry ε-branches into both A and B, and both
// feed into a fresh shared exit.
func alt(bld *builder, a, b fragment) fragment {
	s := bld.newState()
	e := bld.newState()
	bld.addEpsilon(s, a.start)
	bld.addEpsilon(s, b.start)
	bld.addEpsilon(a.end, e)
	bld.addEpsilon(b.end, e)
	return fragment{start: s, end: e}
}

// plus builds A+: one or more repetitions. A fresh entry feeds A; A's exit
// can loop back into A's entry or proceed to a fresh shared exit.
func plus(bld *builder, a fragment) fragment {
	s := bld.newState()
	e := bld.newState()
	bld.addEpsilon(s, a.start)
	bld.addEpsilon(a.end, a.start)
	bld.addEpsilon(a.end, e)
	return fragment{start: s, end: e}
}

// star builds A*: the same shape as plus, plus a direct ε-edge from entry
// to exit allowing zero repetitions.
func star(bld *builder, a fragment) fragment {
	f := plus(bld, a)
	bld.addEpsilon(f.start, f.end)
	return f
}

// opt builds A?: a fresh entry ε-branches into A or directly to a fresh
// shared exit; A's own exit also feeds that shared exit.
func opt(bld *builder, a fragment) fragment {
	s := bld.newState()
	e := bld.newState()
	bld.addEpsilon(s, a.start)
	bld.addEpsilon(s, e)
	bld.addEpsilon(a.end, e)
	return fragment{start: s, end: e}
}
