package parser

import "testing"

func TestShuntingYardPostfixRendering(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{`a(b|c)*`, `abc|*.`},
		{`ab`, `ab.`},
		{`a|b`, `ab|`},
		{`(ab)+`, `ab.+`},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, ok := Parse([]byte(tt.pattern))
			if !ok {
				t.Fatalf("Parse(%q) reported malformed input", tt.pattern)
			}
			if got.String() != tt.want {
				t.Errorf("Parse(%q) postfix = %q, want %q", tt.pattern, got.String(), tt.want)
			}
		})
	}
}

func TestShuntingYardMalformedParens(t *testing.T) {
	tests := []string{"(a", "a)", "((a)", "a))", ")("}
	for _, pattern := range tests {
		t.Run(pattern, func(t *testing.T) {
			infix := InsertConcat(Tokenize([]byte(pattern)))
			if _, ok := ShuntingYard(infix); ok {
				t.Errorf("ShuntingYard(%q) reported ok, want malformed", pattern)
			}
		})
	}
}

func TestShuntingYardBalancedParens(t *testing.T) {
	tests := []string{"(a)", "(a|b)", "((a))", "(a)(b)"}
	for _, pattern := range tests {
		t.Run(pattern, func(t *testing.T) {
			infix := InsertConcat(Tokenize([]byte(pattern)))
			if _, ok := ShuntingYard(infix); !ok {
				t.Errorf("ShuntingYard(%q) reported malformed, want ok", pattern)
			}
		})
	}
}
