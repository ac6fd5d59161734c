// Package literal extracts, from a compiled postfix token.Program, the
// finite set of literal byte strings the program's language is restricted
// to — when such a finite set exists. This mirrors the teacher's own
// literal-extraction concept (coregex's literal.Seq/literal.Extractor) but
// scaled to this engine's six-operator, byte-alphabet grammar: a subtree
// built from Operand, Concat and Alternation alone has a finite, exactly
// enumerable language; the moment a subtree contains KleeneStar,
// PositiveClosure or Optional, its language is (at least potentially)
// unbounded or includes the empty string in a position that breaks the
// surrounding concatenation's adjacency guarantee, so it and everything
// built on top of it is marked inexact.
//
// The result feeds package prefilter: an Exact Seq can be used to decide
// a match outright; an inexact one simply means no prefilter opportunity
// was found, never a correctness problem either way.
package literal

import "bytes"

// Literal is one concrete byte string a program may match.
type Literal struct {
	Bytes []byte
}

// Seq is the outcome of extraction: either an exact, finite enumeration of
// every string the program matches, or a token signalling that no useful
// enumeration could be produced.
type Seq struct {
	Literals []Literal
	Exact    bool
}

// IsEmpty reports whether the sequence carries no usable literals.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.Literals) == 0
}

// Len returns the number of alternative literals.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Literals)
}

// Get returns the i'th literal.
func (s *Seq) Get(i int) Literal { return s.Literals[i] }

// dedupe removes duplicate byte strings, preserving first-seen order.
func dedupe(lits []Literal) []Literal {
	seen := make(map[string]struct{}, len(lits))
	out := lits[:0]
	for _, l := range lits {
		k := string(l.Bytes)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, l)
	}
	return out
}

// crossProduct concatenates every literal in a with every literal in b,
// i.e. the exact language of Concat(A, B) given A and B are both exact.
func crossProduct(a, b []Literal) []Literal {
	out := make([]Literal, 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			joined := make([]byte, 0, len(x.Bytes)+len(y.Bytes))
			joined = append(joined, x.Bytes...)
			joined = append(joined, y.Bytes...)
			out = append(out, Literal{Bytes: joined})
		}
	}
	return out
}

// union concatenates two alternative sets, i.e. the exact language of
// Alternation(A, B) given A and B are both exact.
func union(a, b []Literal) []Literal {
	out := make([]Literal, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return dedupe(out)
}

// Contains reports whether any literal in the sequence is a substring of
// haystack, by a linear bytes.Contains scan per literal. Package prefilter
// does not call it; its Prefilter uses an Aho-Corasick automaton instead.
func (s *Seq) Contains(haystack []byte) bool {
	for _, l := range s.Literals {
		if bytes.Contains(haystack, l.Bytes) {
			return true
		}
	}
	return false
}
