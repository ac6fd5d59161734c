// Package trex implements a regular-expression matcher over Thompson's
// classical pipeline: a pattern is tokenized, an explicit concatenation
// operator is inserted between adjacent operand-like tokens, the result is
// converted to postfix by shunting-yard, Thompson's construction builds an
// NFA over the postfix form, and a bit-set subset simulator decides
// acceptance. The alphabet is raw bytes — no Unicode awareness, no
// character classes, no anchors, no counted repetition, no capture groups.
//
// Basic usage:
//
//	prog := trex.Compile(`a(b|c)*`)
//	prog.Match([]byte("abbc")) // true
//	prog.Match([]byte("ab c")) // false
//
// Compile never fails outright: a malformed pattern silently compiles to
// the empty program, which matches only the empty input (see CompileStrict
// for an error-returning variant).
package trex

import (
	"github.com/tnfa/trex/literal"
	"github.com/tnfa/trex/nfa"
	"github.com/tnfa/trex/parser"
	"github.com/tnfa/trex/prefilter"
	"github.com/tnfa/trex/token"
)

// Program is a compiled regular expression: an immutable automaton plus
// enough of the original postfix form to render it back for diagnostics.
// A Program is safe to use concurrently from multiple goroutines — Match
// never mutates it.
type Program struct {
	postfix token.Program
	auto    *nfa.Automaton
	pf      *prefilter.Prefilter
	hasPf   bool
}

// Compile parses and compiles pattern into a Program. A pattern that fails
// to parse (unbalanced parentheses) or fails to compile (a postfix
// sequence that underflows the fragment stack, or a pattern whose
// Thompson construction would exceed the state-count ceiling) silently
// degrades to the empty Program, which matches only the empty input.
func Compile(pattern string) *Program {
	postfix, ok := parser.Parse([]byte(pattern))
	if !ok {
		postfix = nil
	}

	auto, err := nfa.Compile(postfix)
	if err != nil {
		postfix = nil
		auto, err = nfa.Compile(nil)
		if err != nil {
			// Compiling the empty program cannot fail; a failure here is
			// a programming error in package nfa, not a user error.
			panic("trex: compiling the empty program: " + err.Error())
		}
	}

	p := &Program{postfix: postfix, auto: auto}
	if pf, ok := prefilter.Build(literal.Extract(postfix)); ok {
		p.pf, p.hasPf = pf, true
	}
	return p
}

// MustCompile is Compile, kept for symmetry with CompileStrict; Compile
// itself never panics on a malformed pattern, so MustCompile only panics
// if pattern cannot even be represented as a string (never, in Go) — it
// exists so call sites that want "I asserted this pattern is valid" read
// the same way regardless of which compile entry point backs them.
func MustCompile(pattern string) *Program {
	return Compile(pattern)
}

// CompileStrict is Compile, but reports a non-nil error instead of
// silently degrading to the empty program when pattern is malformed.
func CompileStrict(pattern string) (*Program, error) {
	postfix, ok := parser.Parse([]byte(pattern))
	if !ok {
		return nil, &nfa.CompileError{Pattern: pattern, Err: nfa.ErrUnbalancedParens}
	}

	auto, err := nfa.Compile(postfix)
	if err != nil {
		return nil, &nfa.CompileError{Pattern: pattern, Err: err}
	}

	p := &Program{postfix: postfix, auto: auto}
	if pf, ok := prefilter.Build(literal.Extract(postfix)); ok {
		p.pf, p.hasPf = pf, true
	}
	return p, nil
}

// Match reports whether input, taken in its entirety, is accepted by p.
// Matching is anchored at both ends: there is no implicit leading or
// trailing ".*".
func (p *Program) Match(input []byte) bool {
	if p.hasPf {
		return p.pf.Decide(input)
	}
	return nfa.Match(p.auto, input)
}

// MatchString is Match over a string.
func (p *Program) MatchString(s string) bool {
	return p.Match([]byte(s))
}

// PostfixString renders p's postfix token program for diagnostics, one
// byte per token in program order (the CLI's -r flag surfaces exactly
// this string).
func (p *Program) PostfixString() string {
	return p.postfix.String()
}
