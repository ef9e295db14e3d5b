package ast

import "testing"

func TestUint32Ptr(t *testing.T) {
	p := Uint32Ptr(5)
	if p == nil || *p != 5 {
		t.Fatalf("expected pointer to 5, got %v", p)
	}
}

func TestNodeStringers(t *testing.T) {
	nodes := []Node{
		Empty{},
		Literal{Char: 'a'},
		Any{},
		Class{Negated: true, Members: []ClassMember{{Lo: 'a', Hi: 'z'}}},
		Concat{Left: Literal{Char: 'a'}, Right: Literal{Char: 'b'}},
		Alternation{Left: Literal{Char: 'a'}, Right: Literal{Char: 'b'}},
		Repetition{Inner: Literal{Char: 'a'}, Min: 1, Max: nil},
		Repetition{Inner: Literal{Char: 'a'}, Min: 1, Max: Uint32Ptr(3)},
		Group{Kind: Capturing, ID: 1, Inner: Literal{Char: 'a'}},
		Group{Kind: NonCapturing, Inner: Literal{Char: 'a'}},
	}
	for _, n := range nodes {
		if n.String() == "" {
			t.Errorf("%T.String() returned empty string", n)
		}
	}
}
