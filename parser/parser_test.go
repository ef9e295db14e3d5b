package parser

import (
	"testing"

	"github.com/luckasRanarison/regex-potata/ast"
)

func TestParseLiteralsAndConcat(t *testing.T) {
	node, groups, err := Parse("ab")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if groups != 0 {
		t.Fatalf("expected 0 capture groups, got %d", groups)
	}
	concat, ok := node.(ast.Concat)
	if !ok {
		t.Fatalf("expected ast.Concat, got %T", node)
	}
	if lit, ok := concat.Left.(ast.Literal); !ok || lit.Char != 'a' {
		t.Fatalf("expected left literal 'a', got %#v", concat.Left)
	}
}

func TestParseAlternation(t *testing.T) {
	node, _, err := Parse("a|b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := node.(ast.Alternation); !ok {
		t.Fatalf("expected ast.Alternation, got %T", node)
	}
}

func TestParseQuantifiers(t *testing.T) {
	tests := []struct {
		pattern string
		min     uint32
		max     *uint32
	}{
		{"a*", 0, nil},
		{"a+", 1, nil},
		{"a?", 0, ast.Uint32Ptr(1)},
		{"a{3}", 3, ast.Uint32Ptr(3)},
		{"a{2,}", 2, nil},
		{"a{2,5}", 2, ast.Uint32Ptr(5)},
	}

	for _, tc := range tests {
		t.Run(tc.pattern, func(t *testing.T) {
			node, _, err := Parse(tc.pattern)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			rep, ok := node.(ast.Repetition)
			if !ok {
				t.Fatalf("expected ast.Repetition, got %T", node)
			}
			if rep.Min != tc.min {
				t.Errorf("min: got %d, want %d", rep.Min, tc.min)
			}
			switch {
			case tc.max == nil && rep.Max != nil:
				t.Errorf("max: got %d, want unbounded", *rep.Max)
			case tc.max != nil && rep.Max == nil:
				t.Errorf("max: got unbounded, want %d", *tc.max)
			case tc.max != nil && rep.Max != nil && *rep.Max != *tc.max:
				t.Errorf("max: got %d, want %d", *rep.Max, *tc.max)
			}
		})
	}
}

func TestParseLiteralBraceWhenNotBounds(t *testing.T) {
	node, _, err := Parse("a{z}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Concatenation is left-associative, so a{z} parses as
	// Concat(Concat(Concat(a, '{'), 'z'), '}').
	concat, ok := node.(ast.Concat)
	if !ok {
		t.Fatalf("expected ast.Concat (literal braces), got %T", node)
	}
	for i := 0; i < 2; i++ {
		inner, ok := concat.Left.(ast.Concat)
		if !ok {
			t.Fatalf("expected nested ast.Concat (literal braces), got %T", concat.Left)
		}
		concat = inner
	}
	if lit, ok := concat.Right.(ast.Literal); !ok || lit.Char != '{' {
		t.Fatalf("expected '{' to parse as a literal, got %#v", concat.Right)
	}
}

func TestParseGroups(t *testing.T) {
	node, groups, err := Parse("(a)(?:b)(?<name>c)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if groups != 2 {
		t.Fatalf("expected 2 capturing groups, got %d", groups)
	}

	// (a) should get id 1, (?<name>c) should get id 2.
	outer := node.(ast.Concat)
	inner := outer.Left.(ast.Concat)
	g1 := inner.Left.(ast.Group)
	if g1.Kind != ast.Capturing || g1.ID != 1 {
		t.Errorf("expected capturing group 1, got %#v", g1)
	}
	nonCap := inner.Right.(ast.Group)
	if nonCap.Kind != ast.NonCapturing {
		t.Errorf("expected (?:b) to be non-capturing, got %#v", nonCap)
	}
	named := outer.Right.(ast.Group)
	if named.Kind != ast.Capturing || named.ID != 2 || named.Name != "name" {
		t.Errorf("expected named capturing group 2 \"name\", got %#v", named)
	}
}

func TestParseBugCompatibleNonCapturing(t *testing.T) {
	node, groups, err := Parse("(:?ab)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if groups != 0 {
		t.Fatalf("expected (:?...) to be non-capturing, got %d groups", groups)
	}
	g, ok := node.(ast.Group)
	if !ok || g.Kind != ast.NonCapturing {
		t.Fatalf("expected non-capturing group, got %#v", node)
	}
}

func TestParseClassShorthandNegationInsideBracket(t *testing.T) {
	node, _, err := Parse(`[\D\s]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	class, ok := node.(ast.Class)
	if !ok {
		t.Fatalf("expected ast.Class, got %T", node)
	}
	if class.Negated {
		t.Fatalf("bracket itself should not be negated")
	}
	if len(class.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(class.Members))
	}
	if !class.Members[0].Negate || class.Members[0].Shorthand != 'd' {
		t.Errorf("expected first member to be negated \\d, got %#v", class.Members[0])
	}
	if class.Members[1].Negate || class.Members[1].Shorthand != 's' {
		t.Errorf("expected second member to be plain \\s, got %#v", class.Members[1])
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		kind    ErrorKind
	}{
		{"unterminated class", "[a-z", UnterminatedClass},
		{"unterminated group", "(foo", UnterminatedGroup},
		{"bad range order", "a{3,2}", BadQuantifier},
		{"trailing backslash", `a\`, TrailingBackslash},
		{"duplicate group name", "(?<x>a)(?<x>b)", DuplicateGroupName},
		{"unmatched close paren", "a)", UnexpectedChar},
		{"empty class", "[]", EmptyClass},
		{"nothing to repeat", "*a", NothingToRepeat},
		{"unknown escape", `\q`, InvalidEscape},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Parse(tc.pattern)
			if err == nil {
				t.Fatalf("expected error for pattern %q", tc.pattern)
			}
			ce, ok := err.(*CompileError)
			if !ok {
				t.Fatalf("expected *CompileError, got %T", err)
			}
			if ce.Kind != tc.kind {
				t.Errorf("pattern %q: got error kind %s, want %s", tc.pattern, ce.Kind, tc.kind)
			}
		})
	}
}
