package token

import "testing"

func TestNewOperatorCanonicalByte(t *testing.T) {
	tests := []struct {
		kind Kind
		want byte
	}{
		{KleeneStar, '*'},
		{PositiveClosure, '+'},
		{Optional, '?'},
		{Concat, '.'},
		{Alternation, '|'},
		{LParen, '('},
		{RParen, ')'},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got := NewOperator(tt.kind)
			if got.Value != tt.want || got.Kind != tt.kind {
				t.Errorf("NewOperator(%v) = %+v, want value %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestOperandPreservesArbitraryByte(t *testing.T) {
	it := NewOperand('*')
	if !it.IsOperand() {
		t.Fatal("expected Operand kind")
	}
	if it.Value != '*' {
		t.Fatalf("NewOperand('*').Value = %q, want '*'", it.Value)
	}
}

func TestIsUnaryIsBinary(t *testing.T) {
	unary := []Kind{KleeneStar, PositiveClosure, Optional}
	for _, k := range unary {
		if !NewOperator(k).IsUnary() {
			t.Errorf("%v should be unary", k)
		}
		if NewOperator(k).IsBinary() {
			t.Errorf("%v should not be binary", k)
		}
	}

	binary := []Kind{Concat, Alternation}
	for _, k := range binary {
		if !NewOperator(k).IsBinary() {
			t.Errorf("%v should be binary", k)
		}
		if NewOperator(k).IsUnary() {
			t.Errorf("%v should not be unary", k)
		}
	}
}

func TestProgramString(t *testing.T) {
	prog := Program{NewOperand('a'), NewOperand('b'), NewOperator(Concat)}
	if got, want := prog.String(), "ab."; got != want {
		t.Errorf("Program.String() = %q, want %q", got, want)
	}
}
