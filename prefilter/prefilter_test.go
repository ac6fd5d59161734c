package prefilter

import (
	"testing"

	"github.com/tnfa/trex/literal"
)

func TestBuildRejectsInexactSeq(t *testing.T) {
	seq := &literal.Seq{Exact: false}
	if _, ok := Build(seq); ok {
		t.Error("Build should refuse an inexact Seq")
	}
}

func TestBuildRejectsEmptySeq(t *testing.T) {
	seq := &literal.Seq{Exact: true}
	if _, ok := Build(seq); ok {
		t.Error("Build should refuse an empty Seq")
	}
}

func TestDecideExactMembership(t *testing.T) {
	seq := &literal.Seq{
		Exact: true,
		Literals: []literal.Literal{
			{Bytes: []byte("ab")},
			{Bytes: []byte("cd")},
		},
	}
	pf, ok := Build(seq)
	if !ok {
		t.Fatal("Build should succeed for an exact, non-empty Seq")
	}

	tests := map[string]bool{
		"ab":   true,
		"cd":   true,
		"xaby": false, // contains "ab" as a substring but is not equal to it
		"a":    false,
		"abcd": false,
	}
	for input, want := range tests {
		if got := pf.Decide([]byte(input)); got != want {
			t.Errorf("Decide(%q) = %v, want %v", input, got, want)
		}
	}
}
