// Package prefilter provides cheap pre-match rejection for patterns that
// decompose into a small set of fixed literal alternatives, so callers can
// skip the full NFA simulation on inputs that can't possibly match.
package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/luckasRanarison/regex-potata/ast"
	"github.com/luckasRanarison/regex-potata/parser"
)

// Prefilter cheaply rejects inputs that cannot contain a match. A false
// positive from MayMatch is always safe (the caller just does the full
// simulation and finds nothing); a false negative never is.
type Prefilter interface {
	MayMatch(input string) bool
}

// maxLiterals caps both the branching factor of the literal extraction and
// the size of the Aho-Corasick automaton; patterns that would exceed it
// fall back to no prefilter rather than building an expensive one.
const maxLiterals = 64

// Build inspects pattern and returns a Prefilter if it recognizes a form
// cheap to pre-check — currently a flat alternation of fixed literal
// strings, such as "cat|dog|bird" or "(?:GET|POST|PUT)". It returns nil if
// the pattern doesn't decompose this way, or if building the automaton
// fails; callers always fall back to full simulation when it's nil.
func Build(pattern string) Prefilter {
	root, _, err := parser.Parse(pattern)
	if err != nil {
		return nil
	}

	lits, ok := extractLiterals(root)
	if !ok || len(lits) == 0 {
		return nil
	}

	builder := ahocorasick.NewBuilder()
	for _, lit := range lits {
		if lit == "" {
			return nil // an empty alternative matches everywhere; no filtering is possible
		}
		builder.AddPattern([]byte(lit))
	}

	automaton, err := builder.Build()
	if err != nil {
		return nil
	}
	return &acPrefilter{automaton: automaton}
}

type acPrefilter struct {
	automaton *ahocorasick.Automaton
}

func (p *acPrefilter) MayMatch(input string) bool {
	return p.automaton.IsMatch([]byte(input))
}

// extractLiterals returns every literal string node can produce, or false
// if node contains a construct — a wildcard, a class, a repetition — that
// isn't reducible to a fixed set of literal sequences.
func extractLiterals(node ast.Node) ([]string, bool) {
	switch n := node.(type) {
	case ast.Empty:
		return []string{""}, true

	case ast.Literal:
		return []string{string(n.Char)}, true

	case ast.Concat:
		left, ok := extractLiterals(n.Left)
		if !ok {
			return nil, false
		}
		right, ok := extractLiterals(n.Right)
		if !ok {
			return nil, false
		}
		if len(left)*len(right) > maxLiterals {
			return nil, false
		}
		out := make([]string, 0, len(left)*len(right))
		for _, l := range left {
			for _, r := range right {
				out = append(out, l+r)
			}
		}
		return out, true

	case ast.Alternation:
		left, ok := extractLiterals(n.Left)
		if !ok {
			return nil, false
		}
		right, ok := extractLiterals(n.Right)
		if !ok {
			return nil, false
		}
		if len(left)+len(right) > maxLiterals {
			return nil, false
		}
		return append(left, right...), true

	case ast.Group:
		return extractLiterals(n.Inner)

	default:
		return nil, false
	}
}
