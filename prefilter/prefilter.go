// Package prefilter turns an exact literal.Seq into a decisive, cheap
// membership test that can replace running the NFA simulator outright.
//
// This is a much narrower job than the teacher's own prefilter package
// (candidate-position scanning ahead of a full engine run, with SIMD
// byte/substring/multi-literal search strategies selected per pattern
// shape). Here the simulator is anchored full-string matching over a tiny
// alphabet, so the only prefilter worth building is the one case where
// extraction already proved the program's entire language is a finite,
// exact set of strings: then membership in that set *is* the match
// decision, and an Aho-Corasick automaton over the set (the same
// multi-pattern engine the teacher wires in for its own literal-set
// strategy, see meta.Engine's ahoCorasick field) answers it without
// walking a single NFA transition.
package prefilter

import (
	"github.com/coregx/ahocorasick"
	"github.com/tnfa/trex/literal"
)

// Prefilter decides, for some compiled programs, whether a match decision
// can be made without running the simulator at all.
//
// Aho-Corasick's IsMatch answers "does any alternative occur anywhere in
// input", which is necessary but not sufficient for full-string equality
// (e.g. literal "ab" occurs inside "xaby" without "xaby" itself being a
// match). So IsMatch is used only as the fast-reject: a negative answer
// proves no alternative equals input either, since equality implies
// occurrence. A positive answer still falls through to an exact lookup in
// set, which is authoritative.
type Prefilter struct {
	auto *ahocorasick.Automaton
	set  map[string]struct{}
}

// Build constructs a Prefilter from an extracted literal sequence. It
// returns (nil, false) whenever seq is not exact or carries no literals —
// there is nothing decisive to build, and the caller should fall back to
// the simulator unconditionally.
func Build(seq *literal.Seq) (*Prefilter, bool) {
	if seq == nil || !seq.Exact || seq.IsEmpty() {
		return nil, false
	}

	builder := ahocorasick.NewBuilder()
	set := make(map[string]struct{}, seq.Len())
	for i := 0; i < seq.Len(); i++ {
		lit := seq.Get(i)
		builder.AddPattern(lit.Bytes)
		set[string(lit.Bytes)] = struct{}{}
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, false
	}
	return &Prefilter{auto: auto, set: set}, true
}

// Decide reports whether input is exactly one of the program's literal
// alternatives. Build only ever returns a usable Prefilter when the
// program's entire language is that finite set, so Decide's answer is the
// authoritative match result — callers never need to fall back to the
// simulator after calling this.
func (p *Prefilter) Decide(input []byte) bool {
	if !p.auto.IsMatch(input) {
		return false
	}
	_, ok := p.set[string(input)]
	return ok
}
