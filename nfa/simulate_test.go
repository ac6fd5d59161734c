package nfa

import "testing"

func TestMatchEmptyInputAcceptsOnlyEmptyProgram(t *testing.T) {
	m := compileString(t, "")
	if !m.accept.Contains(int(m.start)) {
		t.Fatal("empty program's start state should be accept")
	}
	if !Match(m, nil) {
		t.Error("Match(empty-program, \"\") = false, want true")
	}
	if Match(m, []byte("a")) {
		t.Error("Match(empty-program, \"a\") = true, want false")
	}
}

func TestMatchEndToEndTable(t *testing.T) {
	tests := []struct {
		pattern string
		cases   map[string]bool
	}{
		{
			pattern: `a(b|c)*`,
			cases: map[string]bool{
				"a":    true,
				"abc":  true,
				"abbc": true,
				"acbc": true,
				"":     false,
				"ab c": false,
			},
		},
		{
			pattern: `ab+c?`,
			cases: map[string]bool{
				"ab":   true,
				"abb":  true,
				"abc":  true,
				"abbc": true,
				"ac":   false,
				"a":    false,
			},
		},
		{
			pattern: `(a|b)(a|b)`,
			cases: map[string]bool{
				"aa": true,
				"ab": true,
				"ba": true,
				"bb": true,
				"a":  false,
				"aaa": false,
			},
		},
		{
			pattern: `a\*`,
			cases: map[string]bool{
				"a*": true,
				"a":  false,
				"aa": false,
			},
		},
		{
			pattern: `a*`,
			cases: map[string]bool{
				"":     true,
				"a":    true,
				"aaaa": true,
				"b":    false,
				"ab":   false,
			},
		},
		{
			pattern: `(ab)+`,
			cases: map[string]bool{
				"ab":     true,
				"abab":   true,
				"ababab": true,
				"":       false,
				"a":      false,
				"aba":    false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			m := compileString(t, tt.pattern)
			for input, want := range tt.cases {
				if got := Match(m, []byte(input)); got != want {
					t.Errorf("Match(%q, %q) = %v, want %v", tt.pattern, input, got, want)
				}
			}
		})
	}
}

func TestMatchIsAnchoredBothEnds(t *testing.T) {
	m := compileString(t, `abc`)
	if Match(m, []byte("xabc")) {
		t.Error("Match must not accept extra prefix")
	}
	if Match(m, []byte("abcx")) {
		t.Error("Match must not accept extra suffix")
	}
	if !Match(m, []byte("abc")) {
		t.Error("Match must accept the exact literal")
	}
}
