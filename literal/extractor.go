package literal

import "github.com/tnfa/trex/token"

// ExtractorConfig bounds how much work Extract will do before giving up
// and marking a subtree inexact. These exist for the same reason the
// teacher bounds its own cross-product expansion: an alternation-heavy
// pattern like (a|b|c|...|z)(a|b|c|...|z) would otherwise enumerate an
// exponential literal set.
type ExtractorConfig struct {
	// MaxLiterals caps how many alternative literals a subtree may carry
	// before it is demoted to inexact.
	MaxLiterals int
	// MaxLiteralLen caps the byte length of any single literal.
	MaxLiteralLen int
}

// DefaultConfig returns sensible bounds for typical patterns.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{MaxLiterals: 64, MaxLiteralLen: 64}
}

// frag tracks, for one node of the postfix evaluation, whether its
// sub-language is exactly known and, if so, what it is.
type frag struct {
	lits  []Literal
	exact bool
}

// Extract walks prog — assumed to already be a valid postfix program, as
// produced by a successful parser.Parse/nfa.Compile — with the same
// left-to-right stack discipline as the postfix compiler (nfa.Compile),
// but over literal sets instead of NFA fragments, and returns the Seq
// describing its language when that language is a finite, exact
// enumeration. Operand, Concat and Alternation preserve exactness;
// KleeneStar, PositiveClosure and Optional always produce an inexact
// result, poisoning every ancestor built on top of them. A malformed or
// empty program yields an inexact empty Seq, never a panic: extraction is
// best-effort and purely an optimization (see package prefilter).
func Extract(prog token.Program) *Seq {
	return ExtractWithConfig(prog, DefaultConfig())
}

// ExtractWithConfig is Extract with explicit bounds.
func ExtractWithConfig(prog token.Program, cfg ExtractorConfig) *Seq {
	stack := make([]frag, 0, len(prog))
	inexact := frag{exact: false}

	push := func(f frag) { stack = append(stack, bound(f, cfg)) }
	pop2 := func() (a, b frag, ok bool) {
		if len(stack) < 2 {
			return frag{}, frag{}, false
		}
		b, a = stack[len(stack)-1], stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		return a, b, true
	}
	pop1 := func() (a frag, ok bool) {
		if len(stack) < 1 {
			return frag{}, false
		}
		a = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return a, true
	}

	for _, it := range prog {
		switch it.Kind {
		case token.Operand:
			push(frag{lits: []Literal{{Bytes: []byte{it.Value}}}, exact: true})
		case token.Concat:
			a, b, ok := pop2()
			if !ok {
				return &Seq{}
			}
			if a.exact && b.exact {
				push(frag{lits: crossProduct(a.lits, b.lits), exact: true})
			} else {
				push(inexact)
			}
		case token.Alternation:
			a, b, ok := pop2()
			if !ok {
				return &Seq{}
			}
			if a.exact && b.exact {
				push(frag{lits: union(a.lits, b.lits), exact: true})
			} else {
				push(inexact)
			}
		case token.KleeneStar, token.PositiveClosure, token.Optional:
			if _, ok := pop1(); !ok {
				return &Seq{}
			}
			push(inexact)
		default:
			return &Seq{}
		}
	}

	if len(stack) != 1 {
		return &Seq{}
	}
	top := stack[0]
	if !top.exact {
		return &Seq{}
	}
	return &Seq{Literals: top.lits, Exact: true}
}

// bound demotes f to inexact once it would exceed the configured limits,
// so a single pathological alternation can't blow up memory before the
// rest of extraction even runs.
func bound(f frag, cfg ExtractorConfig) frag {
	if !f.exact {
		return f
	}
	if len(f.lits) > cfg.MaxLiterals {
		return frag{exact: false}
	}
	for _, l := range f.lits {
		if len(l.Bytes) > cfg.MaxLiteralLen {
			return frag{exact: false}
		}
	}
	return f
}
