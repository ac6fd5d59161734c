package parser

import "github.com/tnfa/trex/token"

// InsertConcat scans a token sequence and inserts an explicit Concat token
// between each adjacent pair (L, R) where L is closing and R is opening:
//
//	closing: Operand, RParen, KleeneStar, PositiveClosure, Optional
//	opening: Operand, LParen
//
// Every other adjacent pair is left untouched — in particular, Alternation
// or LParen on the left suppresses insertion, since neither can be
// immediately followed by an implicit concatenation.
func InsertConcat(prog token.Program) token.Program {
	if len(prog) == 0 {
		return prog
	}

	out := make(token.Program, 0, len(prog)*2)
	out = append(out, prog[0])
	for i := 1; i < len(prog); i++ {
		left, right := prog[i-1], prog[i]
		if isClosing(left) && isOpening(right) {
			out = append(out, token.NewOperator(token.Concat))
		}
		out = append(out, right)
	}
	return out
}

func isClosing(it token.Item) bool {
	switch it.Kind {
	case token.Operand, token.RParen, token.KleeneStar, token.PositiveClosure, token.Optional:
		return true
	default:
		return false
	}
}

func isOpening(it token.Item) bool {
	switch it.Kind {
	case token.Operand, token.LParen:
		return true
	default:
		return false
	}
}
