package nfa

import (
	"testing"

	"github.com/luckasRanarison/regex-potata/ast"
)

func TestShorthandSetsAreASCIIOnly(t *testing.T) {
	d := shorthandSet('d')
	if !d('5') || d('a') || d('٥') { // U+0665 ARABIC-INDIC DIGIT FIVE
		t.Errorf("\\d must accept only ASCII 0-9")
	}

	w := shorthandSet('w')
	if !w('_') || !w('Z') || w(' ') {
		t.Errorf("\\w must accept [A-Za-z0-9_] only")
	}

	s := shorthandSet('s')
	if !s('\t') || !s(' ') || s('a') {
		t.Errorf("\\s must accept ASCII whitespace only")
	}
}

func TestClassPredicateNegation(t *testing.T) {
	c := ast.Class{
		Negated: true,
		Members: []ast.ClassMember{{Lo: 'a', Hi: 'c'}},
	}
	accept, _ := classPredicate(c)
	if accept('b') {
		t.Errorf("negated [a-c] should reject 'b'")
	}
	if !accept('z') {
		t.Errorf("negated [a-c] should accept 'z'")
	}
}

func TestClassPredicateMixedShorthandAndRange(t *testing.T) {
	c := ast.Class{
		Members: []ast.ClassMember{
			{Shorthand: 'd'},
			{Lo: 'x', Hi: 'z'},
		},
	}
	accept, _ := classPredicate(c)
	if !accept('5') {
		t.Errorf("expected digit to match [\\dx-z]")
	}
	if !accept('y') {
		t.Errorf("expected 'y' to match [\\dx-z]")
	}
	if accept('m') {
		t.Errorf("'m' should not match [\\dx-z]")
	}
}

func TestClassPredicateIndividuallyNegatedMember(t *testing.T) {
	c := ast.Class{
		Members: []ast.ClassMember{
			{Shorthand: 'd', Negate: true},
			{Shorthand: 's'},
		},
	}
	accept, _ := classPredicate(c)
	if !accept('x') {
		t.Errorf("expected non-digit to match [\\D\\s]")
	}
	if !accept(' ') {
		t.Errorf("expected whitespace to match [\\D\\s]")
	}
	if accept('7') {
		t.Errorf("digit should not match [\\D\\s]")
	}
}
