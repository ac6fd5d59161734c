// Package parser implements the front half of the Thompson pipeline:
// tokenization, explicit-concatenation insertion, and shunting-yard
// conversion to postfix form.
package parser

import "github.com/tnfa/trex/token"

// Parse runs the full front-end pipeline over a raw pattern and returns its
// postfix token.Program. ok is false only when the shunting-yard stage
// detects mismatched parentheses; callers follow the compile surface's
// policy of degrading to an empty Program in that case (see
// nfa.Compile for the remaining half of the malformed-input contract: a
// syntactically balanced but operator-heavy postfix stream that underflows
// the fragment stack is caught there instead).
func Parse(pattern []byte) (token.Program, bool) {
	infix := InsertConcat(Tokenize(pattern))
	return ShuntingYard(infix)
}
