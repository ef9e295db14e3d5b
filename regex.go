// Package regexpotata is a small regular expression engine built around an
// explicit parser, Thompson-constructed NFA, and a Pike-VM simulator rather
// than a backtracker. Matching is greedy-longest at each scanned start
// position, not leftmost-first: among every way a pattern can match at a
// given position, the longest one wins, and positions are always reported
// as codepoint (rune) offsets rather than byte offsets.
//
// Example:
//
//	re, err := regexpotata.Compile(`(?<year>\d{4})-(?<month>\d{2})`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if re.Test("born 1991-08") {
//	    fmt.Println("matched!")
//	}
package regexpotata

import (
	"github.com/luckasRanarison/regex-potata/nfa"
	"github.com/luckasRanarison/regex-potata/prefilter"
	"github.com/luckasRanarison/regex-potata/vm"
)

// Match is a half-open span of codepoint offsets: the match text is
// input[Start:End] when input is indexed by rune, not byte.
type Match = vm.Match

// Capture is one capture group's result. Group 0 is always present and
// spans the whole match; Name is "" for a positional-only group.
type Capture = vm.Capture

// Regex is a compiled pattern, safe for concurrent read-only use: Compile
// builds an immutable NFA once, and each matching call gets its own
// Simulator scratch space.
type Regex struct {
	pattern  string
	n        *nfa.NFA
	pf       prefilter.Prefilter
	maxSteps int
}

// Option configures a Regex at compile time.
type Option func(*Regex)

// WithMaxSteps bounds the number of input codepoints a single match
// attempt may consume before giving up, guarding against pathological
// patterns on pathological input. Zero (the default) means unbounded.
func WithMaxSteps(n int) Option {
	return func(r *Regex) { r.maxSteps = n }
}

// Compile parses and compiles pattern. A syntax error is a
// *parser.CompileError reporting the rune offset and kind of the problem; a
// pattern nested too deeply for the compiler fails with an
// *nfa.CompileError wrapping nfa.ErrTooComplex, which carries neither.
//
// Example:
//
//	re, err := regexpotata.Compile(`[A-Za-z_]\w*`)
func Compile(pattern string, opts ...Option) (*Regex, error) {
	n, err := nfa.Compile(pattern)
	if err != nil {
		return nil, err
	}

	r := &Regex{pattern: pattern, n: n, pf: prefilter.Build(pattern)}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// MustCompile is like Compile but panics on error, for patterns known to
// be valid ahead of time (e.g. package-level vars).
//
// Example:
//
//	var identifier = regexpotata.MustCompile(`[A-Za-z_]\w*`)
func MustCompile(pattern string, opts ...Option) *Regex {
	re, err := Compile(pattern, opts...)
	if err != nil {
		panic("regexpotata: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// Pattern returns the source pattern the Regex was compiled from.
func (r *Regex) Pattern() string { return r.pattern }

func (r *Regex) simulator() *vm.Simulator {
	s := vm.New(r.n)
	s.MaxSteps = r.maxSteps
	return s
}

// Test reports whether input contains any match of the pattern.
//
// Example:
//
//	re := regexpotata.MustCompile(`\d+`)
//	re.Test("room 42") // true
func (r *Regex) Test(input string) bool {
	if r.pf != nil && !r.pf.MayMatch(input) {
		return false
	}
	_, _, ok := r.simulator().Find([]rune(input), 0)
	return ok
}

// Find returns the leftmost, greedy-longest match in input, or false if
// the pattern doesn't occur.
//
// Example:
//
//	re := regexpotata.MustCompile(`\d+`)
//	m, ok := re.Find("room 42")
//	// m == Match{Start: 5, End: 7}
func (r *Regex) Find(input string) (Match, bool) {
	if r.pf != nil && !r.pf.MayMatch(input) {
		return Match{}, false
	}
	m, _, ok := r.simulator().Find([]rune(input), 0)
	return m, ok
}

// FindAll returns every non-overlapping match in input, scanned left to
// right. A zero-width match advances the scan by one codepoint.
func (r *Regex) FindAll(input string) []Match {
	if r.pf != nil && !r.pf.MayMatch(input) {
		return nil
	}
	return r.simulator().FindAll([]rune(input))
}

// Captures returns the capture groups of the leftmost match in input,
// including group 0 (the whole match). It returns false if there's no
// match; a group not reached by the winning path is omitted.
//
// Example:
//
//	re := regexpotata.MustCompile(`(?<year>\d{4})-(?<month>\d{2})`)
//	caps, _ := re.Captures("born 1991-08")
//	// caps[1] == Capture{Group: 1, Name: "year", Start: 5, End: 9}
func (r *Regex) Captures(input string) ([]Capture, bool) {
	if r.pf != nil && !r.pf.MayMatch(input) {
		return nil, false
	}
	_, caps, ok := r.simulator().Find([]rune(input), 0)
	return caps, ok
}

// CapturesAll returns the capture groups of every non-overlapping match
// in input.
func (r *Regex) CapturesAll(input string) [][]Capture {
	if r.pf != nil && !r.pf.MayMatch(input) {
		return nil
	}
	return r.simulator().CapturesAll([]rune(input))
}

// States returns the ids of every NFA state, for graph visualization.
func (r *Regex) States() []nfa.StateID { return r.n.StateIDs() }

// Transitions returns the outgoing (label, target) pairs of NFA state s,
// for graph visualization.
func (r *Regex) Transitions(s nfa.StateID) []nfa.TransitionView { return r.n.Transitions(s) }

// NumStates returns the number of states in the compiled NFA.
func (r *Regex) NumStates() int { return r.n.NumStates() }
