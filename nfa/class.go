package nfa

import (
	"fmt"
	"strings"

	"github.com/luckasRanarison/regex-potata/ast"
)

// shorthandSet returns the membership test for a class shorthand letter,
// locked to the ASCII definitions spelled out in the spec: \d = [0-9],
// \w = [A-Za-z0-9_], \s = [ \t\n\r\f\v]. Complements (\D, \W, \S) are the
// set complement over all Unicode codepoints, not just ASCII.
func shorthandSet(letter rune) func(rune) bool {
	switch letter {
	case 'd':
		return func(r rune) bool { return r >= '0' && r <= '9' }
	case 'w':
		return func(r rune) bool {
			return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
		}
	case 's':
		return func(r rune) bool {
			switch r {
			case ' ', '\t', '\n', '\r', '\f', '\v':
				return true
			}
			return false
		}
	default:
		return func(rune) bool { return false }
	}
}

func shorthandLabel(letter rune, negate bool) string {
	if negate {
		return `\` + strings.ToUpper(string(letter))
	}
	return `\` + string(letter)
}

// memberPredicate builds the accept function and label for one ast.ClassMember.
func memberPredicate(m ast.ClassMember) (func(rune) bool, string) {
	if m.Shorthand != 0 {
		set := shorthandSet(m.Shorthand)
		if m.Negate {
			return func(r rune) bool { return !set(r) }, shorthandLabel(m.Shorthand, true)
		}
		return set, shorthandLabel(m.Shorthand, false)
	}
	if m.Lo == m.Hi {
		return func(r rune) bool { return r == m.Lo }, string(m.Lo)
	}
	return func(r rune) bool { return r >= m.Lo && r <= m.Hi },
		fmt.Sprintf("%c-%c", m.Lo, m.Hi)
}

// classPredicate builds the combined accept function and bracket-form
// label for an ast.Class (negation applies to the union of all members).
func classPredicate(c ast.Class) (func(rune) bool, string) {
	type entry struct {
		accept func(rune) bool
		label  string
	}
	entries := make([]entry, len(c.Members))
	for i, m := range c.Members {
		accept, label := memberPredicate(m)
		entries[i] = entry{accept, label}
	}

	matchesAny := func(r rune) bool {
		for _, e := range entries {
			if e.accept(r) {
				return true
			}
		}
		return false
	}

	var sb strings.Builder
	sb.WriteByte('[')
	if c.Negated {
		sb.WriteByte('^')
	}
	for _, e := range entries {
		sb.WriteString(e.label)
	}
	sb.WriteByte(']')

	if c.Negated {
		return func(r rune) bool { return !matchesAny(r) }, sb.String()
	}
	return matchesAny, sb.String()
}
