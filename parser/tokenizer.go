package parser

import "github.com/tnfa/trex/token"

// Tokenize turns a raw pattern into a token sequence, honouring backslash
// escapes. Each byte is classified independently: '*', '+', '?', '.', '|',
// '(' and ')' become their matching operator kind, everything else becomes
// an Operand. A backslash followed by any byte b produces a single
// Operand(b), regardless of what b would otherwise classify as — this is
// how a literal operator byte (including the concat byte '.' itself, which
// unescaped is the explicit Concat operator) is written.
//
// A trailing lone backslash (the last byte of the pattern) has no byte to
// escape. The reference behaviour kept here is to emit it as a literal
// Operand('\\') rather than treating it as malformed.
func Tokenize(pattern []byte) token.Program {
	prog := make(token.Program, 0, len(pattern))
	for i := 0; i < len(pattern); i++ {
		b := pattern[i]
		if b == '\\' {
			if i+1 < len(pattern) {
				i++
				prog = append(prog, token.NewOperand(pattern[i]))
			} else {
				prog = append(prog, token.NewOperand('\\'))
			}
			continue
		}
		prog = append(prog, classify(b))
	}
	return prog
}

func classify(b byte) token.Item {
	switch b {
	case '*':
		return token.NewOperator(token.KleeneStar)
	case '+':
		return token.NewOperator(token.PositiveClosure)
	case '?':
		return token.NewOperator(token.Optional)
	case '.':
		return token.NewOperator(token.Concat)
	case '|':
		return token.NewOperator(token.Alternation)
	case '(':
		return token.NewOperator(token.LParen)
	case ')':
		return token.NewOperator(token.RParen)
	default:
		return token.NewOperand(b)
	}
}
