package parser

import "github.com/tnfa/trex/token"

// precedence gives the shunting-yard binding power of each operator kind,
// ascending. The unary postfix operators sit above Concat and Alternation;
// they never conflict with each other in the algorithm below since each
// arrives already in postfix position on the input side.
func precedence(k token.Kind) int {
	switch k {
	case token.Alternation:
		return 1
	case token.Concat:
		return 2
	case token.KleeneStar, token.PositiveClosure, token.Optional:
		return 3
	default:
		return 0
	}
}

// ShuntingYard converts an infix token sequence (Operand/operators/parens)
// into postfix form using Dijkstra's algorithm. It reports ok=false for
// malformed input: unbalanced parentheses, either an opening paren left on
// the stack at end of input or a closing paren with nothing to match. On
// ok=false the returned program should be discarded — Parse degrades to an
// empty Program in that case, per the compile surface's malformed-input
// policy.
func ShuntingYard(prog token.Program) (out token.Program, ok bool) {
	out = make(token.Program, 0, len(prog))
	stack := make(token.Program, 0, len(prog))

	for _, it := range prog {
		switch it.Kind {
		case token.Operand:
			out = append(out, it)
		case token.LParen:
			stack = append(stack, it)
		case token.RParen:
			found := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == token.LParen {
					found = true
					break
				}
				out = append(out, top)
			}
			if !found {
				return nil, false
			}
		default: // KleeneStar, PositiveClosure, Optional, Concat, Alternation
			p := precedence(it.Kind)
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind == token.LParen || precedence(top.Kind) < p {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, it)
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == token.LParen {
			return nil, false
		}
		out = append(out, top)
	}

	return out, true
}
