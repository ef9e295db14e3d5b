// Package nfa Thompson-constructs an epsilon-NFA from an ast.Node tree and
// stores it as an immutable, cycle-safe state graph addressed by integer
// id — states never hold pointers to each other, only StateID references,
// so Kleene-style back-edges are trivial to represent and the automaton is
// freely shareable across goroutines once built.
package nfa

import "fmt"

// StateID addresses a state by its index in NFA.states.
type StateID int

// PredicateKind tags the variant of a Transition's Predicate.
type PredicateKind int

const (
	// Epsilon consumes no input.
	Epsilon PredicateKind = iota
	// GroupEnter is an epsilon transition tagged with the capture group
	// it opens.
	GroupEnter
	// GroupExit is an epsilon transition tagged with the capture group
	// it closes.
	GroupExit
	// Symbol consumes exactly one input codepoint iff Accepts reports true.
	Symbol
)

// Predicate is the tagged union attached to every Transition.
type Predicate struct {
	Kind    PredicateKind
	Group   uint32      // valid for GroupEnter/GroupExit
	Accepts func(r rune) bool // valid for Symbol
	Label   string            // human-readable form, for introspection only
}

// Transition is one outgoing edge of a state.
type Transition struct {
	Predicate Predicate
	Target    StateID
}

// State is one node of the NFA: an ordered list of outgoing transitions.
// Order matters — it is how the simulator's first-wins tie-break produces
// deterministic, leftmost-preferring captures.
type State struct {
	Transitions []Transition
}

func (s State) String() string {
	return fmt.Sprintf("State(%d transitions)", len(s.Transitions))
}

func epsilon(target StateID) Transition {
	return Transition{Predicate: Predicate{Kind: Epsilon, Label: "ε"}, Target: target}
}

func groupEnter(group uint32, target StateID) Transition {
	return Transition{
		Predicate: Predicate{Kind: GroupEnter, Group: group, Label: fmt.Sprintf("ε[g=%d enter]", group)},
		Target:    target,
	}
}

func groupExit(group uint32, target StateID) Transition {
	return Transition{
		Predicate: Predicate{Kind: GroupExit, Group: group, Label: fmt.Sprintf("ε[g=%d exit]", group)},
		Target:    target,
	}
}

func symbol(accepts func(rune) bool, label string, target StateID) Transition {
	return Transition{Predicate: Predicate{Kind: Symbol, Accepts: accepts, Label: label}, Target: target}
}
